package game

// CellContent describes what occupies a cell. Exactly one variant holds at
// any time: a cell is never simultaneously pawns and a card.
type CellContent int

const (
	ContentEmpty CellContent = iota
	ContentPawns
	ContentCard
)

func (c CellContent) String() string {
	switch c {
	case ContentEmpty:
		return "EMPTY"
	case ContentPawns:
		return "PAWNS"
	default:
		return "CARD"
	}
}

// MaxPawns is the cap on pawns in a single cell.
const MaxPawns = 3

// cell is owned exclusively by its Board. Its mutations are total for the
// states the board exposes them in: callers validate content and ownership
// first, so no cell operation can fail.
type cell struct {
	content CellContent
	owner   Player
	pawns   int
	card    Card
}

// addPawn grows the cell for a player that may legally do so: an empty cell
// gains its first pawn, an owned pawn cell grows up to MaxPawns and silently
// stays there afterwards.
func (c *cell) addPawn(p Player) {
	if c.content == ContentEmpty {
		c.content = ContentPawns
		c.owner = p
		c.pawns = 1
		return
	}
	if c.pawns < MaxPawns {
		c.pawns++
	}
}

// setOwner flips ownership of a pawn cell, count unchanged.
func (c *cell) setOwner(p Player) {
	c.owner = p
}

// setCard installs a card, discarding any pawn state. Card cells are terminal
// for the rest of the game.
func (c *cell) setCard(card Card, p Player) {
	c.content = ContentCard
	c.owner = p
	c.pawns = 0
	c.card = card
}
