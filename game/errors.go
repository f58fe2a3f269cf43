package game

import "errors"

// Rule violations are reported as wrapped sentinel errors so callers can
// branch with errors.Is instead of matching on message text.
var (
	ErrInvalidDimensions        = errors.New("invalid board dimensions")
	ErrInvalidDeckConfiguration = errors.New("invalid deck configuration")
	ErrGameNotStarted           = errors.New("game has not been started")
	ErrGameInProgress           = errors.New("game is already in progress")
	ErrGameNotInProgress        = errors.New("game is not in progress")
	ErrOutOfBounds              = errors.New("coordinates out of bounds")
	ErrInvalidCardIndex         = errors.New("invalid card index")
	ErrNotPawns                 = errors.New("cell does not contain pawns")
	ErrWrongOwner               = errors.New("cell is not owned by the acting player")
	ErrInsufficientPawns        = errors.New("not enough pawns to cover the card cost")
	ErrInvalidContent           = errors.New("operation not valid for cell content")
	ErrGameNotOver              = errors.New("game is not over yet")
)
