package game

import "fmt"

// Board is a fixed-size rectangular grid of cells. Dimensions are set at
// construction and never change. The board enforces the cell invariants
// (content/owner/count consistency, pawn cap) on every mutation; it does not
// know about turns, hands, or card costs.
type Board struct {
	rows  int
	cols  int
	cells [][]cell
}

// NewBoard creates an all-empty board. Rows must be positive; columns must be
// odd and greater than 1 so both home columns exist with a true middle.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidDimensions, rows)
	}
	if cols <= 1 {
		return nil, fmt.Errorf("%w: columns must be greater than 1, got %d", ErrInvalidDimensions, cols)
	}
	if cols%2 == 0 {
		return nil, fmt.Errorf("%w: columns must be odd, got %d", ErrInvalidDimensions, cols)
	}
	cells := make([][]cell, rows)
	for r := range cells {
		cells[r] = make([]cell, cols)
	}
	return &Board{rows: rows, cols: cols, cells: cells}, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) at(row, col int) (*cell, error) {
	if !b.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	return &b.cells[row][col], nil
}

// ContentAt returns the content kind of a cell.
func (b *Board) ContentAt(row, col int) (CellContent, error) {
	c, err := b.at(row, col)
	if err != nil {
		return ContentEmpty, err
	}
	return c.content, nil
}

// OwnerAt returns who owns the cell's contents, None for empty cells.
func (b *Board) OwnerAt(row, col int) (Player, error) {
	c, err := b.at(row, col)
	if err != nil {
		return None, err
	}
	return c.owner, nil
}

// PawnCountAt returns the pawn count, 0 for empty and card cells. Never
// exceeds MaxPawns.
func (b *Board) PawnCountAt(row, col int) (int, error) {
	c, err := b.at(row, col)
	if err != nil {
		return 0, err
	}
	return c.pawns, nil
}

// CardAt returns the card placed at the cell; ok is false when the cell does
// not hold a card.
func (b *Board) CardAt(row, col int) (card Card, ok bool, err error) {
	c, err := b.at(row, col)
	if err != nil {
		return Card{}, false, err
	}
	if c.content != ContentCard {
		return Card{}, false, nil
	}
	return c.card, true, nil
}

// AddPawn adds one pawn for the player. An empty cell becomes a single pawn;
// an owned pawn cell grows, silently capped at MaxPawns. Enemy pawns are
// rejected with ErrWrongOwner (influence routes that case through
// TransferOwnership instead) and card cells with ErrInvalidContent.
func (b *Board) AddPawn(row, col int, p Player) error {
	c, err := b.at(row, col)
	if err != nil {
		return err
	}
	switch c.content {
	case ContentCard:
		return fmt.Errorf("%w: cell (%d, %d) holds a card", ErrInvalidContent, row, col)
	case ContentPawns:
		if c.owner != p {
			return fmt.Errorf("%w: pawns at (%d, %d) belong to %s", ErrWrongOwner, row, col, c.owner)
		}
	}
	c.addPawn(p)
	return nil
}

// TransferOwnership hands a pawn cell to a new owner, preserving its count.
// Only valid on pawn cells.
func (b *Board) TransferOwnership(row, col int, p Player) error {
	c, err := b.at(row, col)
	if err != nil {
		return err
	}
	if c.content != ContentPawns {
		return fmt.Errorf("%w: cell (%d, %d) is %s, cannot transfer ownership",
			ErrInvalidContent, row, col, c.content)
	}
	c.setOwner(p)
	return nil
}

// PlaceCard installs a card for the player, overwriting whatever the cell
// held. Affordability is the caller's concern: the board does not re-check
// cost against the consumed pawns.
func (b *Board) PlaceCard(row, col int, card Card, p Player) error {
	c, err := b.at(row, col)
	if err != nil {
		return err
	}
	c.setCard(card, p)
	return nil
}

// BoardFactory isolates board-shape-specific construction. Only the
// rectangular shape exists today.
type BoardFactory interface {
	NewBoard(rows, cols int) (*Board, error)
}

// RectangularFactory builds standard rectangular boards.
type RectangularFactory struct{}

func (RectangularFactory) NewBoard(rows, cols int) (*Board, error) {
	return NewBoard(rows, cols)
}
