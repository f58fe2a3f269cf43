package game

import (
	"fmt"
	"strings"
)

// GridSize is the side length of a card's influence grid.
const GridSize = 5

// gridCenter is the anchor position within the influence grid: the cell the
// card itself occupies when placed.
const gridCenter = 2

// InfluenceGrid marks which cells around the anchor a card affects. The
// center flag is ignored during propagation regardless of its value.
type InfluenceGrid [GridSize][GridSize]bool

// Card is an immutable value object. Cost is the number of pawns consumed by
// placement (1-3) and Value feeds row scoring.
type Card struct {
	Name      string
	Cost      int
	Value     int
	Influence InfluenceGrid
}

// NewCard validates the card attributes: a non-empty name, a cost between 1
// and 3, and a positive value.
func NewCard(name string, cost, value int, influence InfluenceGrid) (Card, error) {
	if name == "" {
		return Card{}, fmt.Errorf("card name cannot be empty")
	}
	if cost < 1 || cost > 3 {
		return Card{}, fmt.Errorf("card %s: cost must be between 1 and 3, got %d", name, cost)
	}
	if value < 1 {
		return Card{}, fmt.Errorf("card %s: value must be positive, got %d", name, value)
	}
	return Card{Name: name, Cost: cost, Value: value, Influence: influence}, nil
}

// Mirrored returns a copy of the card with its influence grid reflected
// left-right. The engine applies this reflection for Blue, so a single
// authored card behaves symmetrically from both home columns.
func (c Card) Mirrored() Card {
	m := c
	for r := 0; r < GridSize; r++ {
		for col := 0; col < GridSize; col++ {
			m.Influence[r][col] = c.Influence[r][GridSize-1-col]
		}
	}
	return m
}

// Equal reports structural equality: name, cost, value and influence grid.
func (c Card) Equal(o Card) bool {
	return c == o
}

func (c Card) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (Cost: %d, Value: %d)\n", c.Name, c.Cost, c.Value)
	for r := 0; r < GridSize; r++ {
		for col := 0; col < GridSize; col++ {
			switch {
			case r == gridCenter && col == gridCenter:
				sb.WriteByte('C')
			case c.Influence[r][col]:
				sb.WriteByte('I')
			default:
				sb.WriteByte('X')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DeckSource produces one deck per player, front of slice drawn first. Any
// shuffling happens inside the source before the decks are handed over; the
// engine never reorders them.
type DeckSource func() (red, blue []Card, err error)
