package game

import "fmt"

// RowScores sums the values of placed cards in one row, split by owner.
func (b *Board) RowScores(row int) (red, blue int, err error) {
	if row < 0 || row >= b.rows {
		return 0, 0, fmt.Errorf("%w: row %d", ErrOutOfBounds, row)
	}
	for col := 0; col < b.cols; col++ {
		c := &b.cells[row][col]
		if c.content != ContentCard {
			continue
		}
		if c.owner == Red {
			red += c.card.Value
		} else {
			blue += c.card.Value
		}
	}
	return red, blue, nil
}

// TotalScore awards each row's full score to the player with the strictly
// greater row score; tied rows award nothing to either side.
func (b *Board) TotalScore() (red, blue int) {
	for row := 0; row < b.rows; row++ {
		r, bl, _ := b.RowScores(row)
		switch {
		case r > bl:
			red += r
		case bl > r:
			blue += bl
		}
	}
	return red, blue
}

// Winner compares total scores: the strictly greater side wins, equal totals
// are a draw reported as None.
func Winner(red, blue int) Player {
	switch {
	case red > blue:
		return Red
	case blue > red:
		return Blue
	default:
		return None
	}
}
