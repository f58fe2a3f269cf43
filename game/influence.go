package game

// ApplyInfluence propagates a placed card's influence around the anchor cell
// (row, col) on behalf of p. The grid's center aligns to the anchor and is
// always skipped; for Blue the grid is reflected left-right first. Targets
// off the board are clipped, not an error.
//
// The result is a pure function of (card, anchor, player, board): each grid
// offset maps to a distinct board cell, so iteration order cannot matter.
func (b *Board) ApplyInfluence(card Card, row, col int, p Player) {
	grid := card.Influence
	if p == Blue {
		grid = card.Mirrored().Influence
	}

	for gr := 0; gr < GridSize; gr++ {
		for gc := 0; gc < GridSize; gc++ {
			if !grid[gr][gc] || (gr == gridCenter && gc == gridCenter) {
				continue
			}
			targetRow := row + gr - gridCenter
			targetCol := col + gc - gridCenter
			if !b.InBounds(targetRow, targetCol) {
				continue
			}
			b.influenceCell(targetRow, targetCol, p)
		}
	}
}

// influenceCell applies one influence hit. Every branch calls a cell mutation
// in a state where it is total, so no error path is reachable: empty cells
// gain a pawn, owned pawns grow (capped), enemy pawns flip owner with their
// count intact, and card cells are immune.
func (b *Board) influenceCell(row, col int, p Player) {
	c := &b.cells[row][col]
	switch c.content {
	case ContentEmpty:
		c.addPawn(p)
	case ContentPawns:
		if c.owner == p {
			c.addPawn(p)
		} else {
			c.setOwner(p)
		}
	case ContentCard:
		// immune once placed
	}
}
