// Package controller holds the player abstraction that drives an engine:
// a controller takes one turn each time it is asked. Search-based strategies
// are out of scope; Random is the reference implementation.
package controller

import (
	"golang.org/x/exp/rand"

	"pawnsboard/engine"
)

// Controller takes one turn on behalf of the current player: either a card
// placement or a pass.
type Controller interface {
	Act(e *engine.Engine) error
}

// Random plays a uniformly random legal placement, passing only when nothing
// is playable.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random controller; seed 0 falls back to the global
// source's behavior with a fixed seed of 1.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = 1
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Act(e *engine.Engine) error {
	moves := e.LegalPlacements()
	if len(moves) == 0 {
		return e.PassTurn()
	}
	m := moves[r.rng.Intn(len(moves))]
	return e.PlaceCard(m.CardIndex, m.Row, m.Col)
}
