package engine

import "pawnsboard/game"

// Placement identifies a legal card play: an index into the current player's
// hand and a target cell.
type Placement struct {
	CardIndex int
	Row       int
	Col       int
}

// LegalPlacements enumerates every placement the current player could make
// right now: each hand card crossed with each cell holding enough of their
// own pawns. Returns nil when the game is not in progress or nothing is
// playable; passing is always available in those cases.
func (e *Engine) LegalPlacements() []Placement {
	if !e.started || e.over {
		return nil
	}
	var moves []Placement
	for row := 0; row < e.board.Rows(); row++ {
		for col := 0; col < e.board.Cols(); col++ {
			content, _ := e.board.ContentAt(row, col)
			if content != game.ContentPawns {
				continue
			}
			owner, _ := e.board.OwnerAt(row, col)
			if owner != e.current {
				continue
			}
			pawns, _ := e.board.PawnCountAt(row, col)
			for i, card := range e.hands[e.current] {
				if card.Cost <= pawns {
					moves = append(moves, Placement{CardIndex: i, Row: row, Col: col})
				}
			}
		}
	}
	return moves
}
