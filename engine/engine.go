// Package engine drives a single Pawns Board game session: the turn state
// machine, card placement with influence propagation, pass handling, draws,
// and read-only queries for views and controllers.
//
// The engine assumes exclusive single-writer access. A concurrent host must
// serialize all mutating calls per session; no internal locking is provided.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pawnsboard/game"
)

// Engine owns the board, hands and decks for one game. It moves through
// NotStarted -> InProgress -> Over; once over, only reads are possible.
type Engine struct {
	id      uuid.UUID
	source  game.DeckSource
	factory game.BoardFactory

	board   *game.Board
	started bool
	over    bool
	// lastPlayerPassed resets on any successful placement; a second
	// consecutive pass flips the game to over.
	lastPlayerPassed bool
	current          game.Player

	// handCap is the configured starting hand size; draws past it are
	// skipped, not queued.
	handCap int
	hands   [3][]game.Card // indexed by game.Player, 2 players
	decks   [3][]game.Card
}

// New creates an engine that will build its decks from source when the game
// starts. The source is called once per StartGame.
func New(source game.DeckSource, opts ...Option) *Engine {
	e := &Engine{
		id:      uuid.New(),
		source:  source,
		factory: game.RectangularFactory{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID identifies this game session in logs.
func (e *Engine) ID() uuid.UUID { return e.id }

// StartGame validates dimensions and decks, deals the starting hands, seeds
// the home columns with one pawn per row (Red in column 0, Blue in the last
// column), and gives Red the first turn. Each deck must hold at least
// rows*cols cards and the starting hand size may not exceed a third of the
// deck, so two more full draw cycles stay possible. A finished game may be
// restarted for a rematch; a running one may not.
func (e *Engine) StartGame(rows, cols, startingHandSize int) error {
	if e.started && !e.over {
		return fmt.Errorf("%w: cannot restart a running game", game.ErrGameInProgress)
	}

	board, err := e.factory.NewBoard(rows, cols)
	if err != nil {
		return err
	}

	if startingHandSize < 0 {
		return fmt.Errorf("%w: starting hand size cannot be negative, got %d",
			game.ErrInvalidDeckConfiguration, startingHandSize)
	}

	red, blue, err := e.source()
	if err != nil {
		return fmt.Errorf("building decks: %w", err)
	}

	minDeckSize := rows * cols
	if len(red) < minDeckSize || len(blue) < minDeckSize {
		return fmt.Errorf("%w: decks must hold at least %d cards, got %d and %d",
			game.ErrInvalidDeckConfiguration, minDeckSize, len(red), len(blue))
	}
	if startingHandSize > len(red)/3 || startingHandSize > len(blue)/3 {
		return fmt.Errorf("%w: starting hand size %d exceeds one third of the deck",
			game.ErrInvalidDeckConfiguration, startingHandSize)
	}

	e.board = board
	e.hands[game.Red] = append([]game.Card(nil), red[:startingHandSize]...)
	e.hands[game.Blue] = append([]game.Card(nil), blue[:startingHandSize]...)
	e.decks[game.Red] = append([]game.Card(nil), red[startingHandSize:]...)
	e.decks[game.Blue] = append([]game.Card(nil), blue[startingHandSize:]...)
	e.handCap = startingHandSize

	for r := 0; r < rows; r++ {
		// fresh empty cells, AddPawn cannot fail
		_ = e.board.AddPawn(r, 0, game.Red)
		_ = e.board.AddPawn(r, cols-1, game.Blue)
	}

	e.current = game.Red
	e.started = true
	e.over = false
	e.lastPlayerPassed = false

	// First player's turn starts with a draw like every other; it no-ops
	// because the hand is already at the cap.
	e.drawCard()

	log.Info().
		Str("game", e.id.String()).
		Int("rows", rows).
		Int("cols", cols).
		Int("hand", startingHandSize).
		Msg("game started")
	return nil
}

// PlaceCard plays the card at cardIndex in the current player's hand onto
// (row, col). The target must hold pawns owned by the current player, at
// least as many as the card costs. On success the card is installed, its
// influence applied, the turn switched and a card drawn for the new current
// player. State is untouched on any validation error.
func (e *Engine) PlaceCard(cardIndex, row, col int) error {
	if err := e.requireInProgress(); err != nil {
		return err
	}
	if !e.board.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", game.ErrOutOfBounds, row, col)
	}

	hand := e.hands[e.current]
	if cardIndex < 0 || cardIndex >= len(hand) {
		return fmt.Errorf("%w: %d (hand size %d)", game.ErrInvalidCardIndex, cardIndex, len(hand))
	}
	card := hand[cardIndex]

	content, _ := e.board.ContentAt(row, col)
	if content != game.ContentPawns {
		return fmt.Errorf("%w: cell (%d, %d) is %s", game.ErrNotPawns, row, col, content)
	}
	owner, _ := e.board.OwnerAt(row, col)
	if owner != e.current {
		return fmt.Errorf("%w: pawns at (%d, %d) belong to %s", game.ErrWrongOwner, row, col, owner)
	}
	pawns, _ := e.board.PawnCountAt(row, col)
	if pawns < card.Cost {
		return fmt.Errorf("%w: need %d, have %d", game.ErrInsufficientPawns, card.Cost, pawns)
	}

	// Validated; mutate.
	_ = e.board.PlaceCard(row, col, card, e.current)
	e.board.ApplyInfluence(card, row, col, e.current)
	e.hands[e.current] = append(hand[:cardIndex], hand[cardIndex+1:]...)

	log.Debug().
		Str("game", e.id.String()).
		Stringer("player", e.current).
		Str("card", card.Name).
		Int("row", row).
		Int("col", col).
		Msg("card placed")

	e.lastPlayerPassed = false
	e.current = e.current.Other()
	e.drawCard()
	return nil
}

// PassTurn gives up the current player's turn. If the other player passed
// immediately before, the game ends: no turn switch, no draw.
func (e *Engine) PassTurn() error {
	if err := e.requireInProgress(); err != nil {
		return err
	}
	if e.lastPlayerPassed {
		e.over = true
		red, blue := e.board.TotalScore()
		log.Info().
			Str("game", e.id.String()).
			Int("red", red).
			Int("blue", blue).
			Stringer("winner", game.Winner(red, blue)).
			Msg("game over after two passes")
		return nil
	}
	e.lastPlayerPassed = true
	e.current = e.current.Other()
	e.drawCard()
	return nil
}

// drawCard moves the top card of the current player's deck into their hand.
// A guaranteed no-op, never an error, when the deck is empty or the hand is
// at the cap.
func (e *Engine) drawCard() {
	deck := e.decks[e.current]
	if len(deck) == 0 || len(e.hands[e.current]) >= e.handCap {
		return
	}
	e.hands[e.current] = append(e.hands[e.current], deck[0])
	e.decks[e.current] = deck[1:]
}

// IsStarted reports whether StartGame has completed successfully.
func (e *Engine) IsStarted() bool { return e.started }

// IsOver reports whether the game ended with two consecutive passes.
func (e *Engine) IsOver() bool { return e.over }

// CurrentPlayer returns whose turn it is.
func (e *Engine) CurrentPlayer() (game.Player, error) {
	if !e.started {
		return game.None, game.ErrGameNotStarted
	}
	return e.current, nil
}

// Dimensions returns the fixed board size.
func (e *Engine) Dimensions() (rows, cols int, err error) {
	if !e.started {
		return 0, 0, game.ErrGameNotStarted
	}
	return e.board.Rows(), e.board.Cols(), nil
}

// ContentAt reports a cell's content kind.
func (e *Engine) ContentAt(row, col int) (game.CellContent, error) {
	if !e.started {
		return game.ContentEmpty, game.ErrGameNotStarted
	}
	return e.board.ContentAt(row, col)
}

// OwnerAt reports who owns a cell's contents.
func (e *Engine) OwnerAt(row, col int) (game.Player, error) {
	if !e.started {
		return game.None, game.ErrGameNotStarted
	}
	return e.board.OwnerAt(row, col)
}

// PawnCountAt reports a cell's pawn count.
func (e *Engine) PawnCountAt(row, col int) (int, error) {
	if !e.started {
		return 0, game.ErrGameNotStarted
	}
	return e.board.PawnCountAt(row, col)
}

// CardAt reports the card placed at a cell, if any.
func (e *Engine) CardAt(row, col int) (game.Card, bool, error) {
	if !e.started {
		return game.Card{}, false, game.ErrGameNotStarted
	}
	return e.board.CardAt(row, col)
}

// Hand returns a copy of the player's hand; mutating it cannot affect the
// engine.
func (e *Engine) Hand(p game.Player) ([]game.Card, error) {
	if !e.started {
		return nil, game.ErrGameNotStarted
	}
	if p != game.Red && p != game.Blue {
		return nil, fmt.Errorf("no hand for player %s", p)
	}
	return append([]game.Card(nil), e.hands[p]...), nil
}

// DeckSize returns the number of cards left in the player's deck.
func (e *Engine) DeckSize(p game.Player) (int, error) {
	if !e.started {
		return 0, game.ErrGameNotStarted
	}
	if p != game.Red && p != game.Blue {
		return 0, fmt.Errorf("no deck for player %s", p)
	}
	return len(e.decks[p]), nil
}

// RowScores returns both players' card-value sums for one row.
func (e *Engine) RowScores(row int) (red, blue int, err error) {
	if !e.started {
		return 0, 0, game.ErrGameNotStarted
	}
	return e.board.RowScores(row)
}

// TotalScore returns both players' totals under row-majority scoring.
func (e *Engine) TotalScore() (red, blue int, err error) {
	if !e.started {
		return 0, 0, game.ErrGameNotStarted
	}
	red, blue = e.board.TotalScore()
	return red, blue, nil
}

// Winner returns the winning player, or None for a draw. Fails with
// ErrGameNotOver while the game is still running.
func (e *Engine) Winner() (game.Player, error) {
	if !e.started {
		return game.None, game.ErrGameNotStarted
	}
	if !e.over {
		return game.None, game.ErrGameNotOver
	}
	red, blue := e.board.TotalScore()
	return game.Winner(red, blue), nil
}

func (e *Engine) requireInProgress() error {
	if !e.started {
		return game.ErrGameNotStarted
	}
	if e.over {
		return fmt.Errorf("%w: game is already over", game.ErrGameNotInProgress)
	}
	return nil
}
