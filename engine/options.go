package engine

import (
	"github.com/google/uuid"

	"pawnsboard/game"
)

type Option func(e *Engine)

// WithBoardFactory swaps the board construction strategy. The default builds
// rectangular boards.
func WithBoardFactory(f game.BoardFactory) Option {
	return func(e *Engine) {
		if f != nil {
			e.factory = f
		}
	}
}

// WithID pins the session ID instead of generating one, useful when the host
// already tracks sessions.
func WithID(id uuid.UUID) Option {
	return func(e *Engine) {
		e.id = id
	}
}
