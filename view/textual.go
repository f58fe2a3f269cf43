// Package view renders a game session as text. It only uses the engine's
// read-only queries, so a renderer can always be pointed at a live game.
package view

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"pawnsboard/engine"
	"pawnsboard/game"
)

// Textual renders the board in the classic format: "__" for empty cells,
// "<count><r|b>" for pawns, "<R|B><value>" for cards, with each row flanked
// by the two players' row scores.
type Textual struct {
	e  *engine.Engine
	au aurora.Aurora
}

// NewTextual wraps an engine. With color enabled, Red and Blue pieces are
// tinted for terminals; disabled output is plain ASCII for tests and pipes.
func NewTextual(e *engine.Engine, color bool) *Textual {
	return &Textual{e: e, au: aurora.NewAurora(color)}
}

// Render returns the board with row scores, one line per row.
func (t *Textual) Render() string {
	if !t.e.IsStarted() {
		return "Game has not been started"
	}
	rows, cols, _ := t.e.Dimensions()

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		red, blue, _ := t.e.RowScores(r)
		fmt.Fprintf(&sb, "%d ", red)
		for c := 0; c < cols; c++ {
			sb.WriteString(t.renderCell(r, c))
			if c < cols-1 {
				sb.WriteByte(' ')
			}
		}
		fmt.Fprintf(&sb, " %d", blue)
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RenderGameState returns the full session view: header, current player, the
// board, and the final scores and winner once the game is over.
func (t *Textual) RenderGameState(header string) string {
	var sb strings.Builder
	if header != "" {
		fmt.Fprintf(&sb, "--- %s ---\n", header)
	}
	if !t.e.IsStarted() {
		sb.WriteString("Game has not been started")
		return sb.String()
	}

	current, _ := t.e.CurrentPlayer()
	fmt.Fprintf(&sb, "Current Player: %s\n", t.tint(current.String(), current))
	sb.WriteString(t.Render())
	sb.WriteByte('\n')

	if t.e.IsOver() {
		red, blue, _ := t.e.TotalScore()
		sb.WriteString("Game is over\n")
		fmt.Fprintf(&sb, "RED score: %d\n", red)
		fmt.Fprintf(&sb, "BLUE score: %d\n", blue)
		winner, _ := t.e.Winner()
		if winner != game.None {
			fmt.Fprintf(&sb, "Winner: %s", t.tint(winner.String(), winner))
		} else {
			sb.WriteString("Game ended in a tie!")
		}
	}
	return sb.String()
}

func (t *Textual) renderCell(row, col int) string {
	content, err := t.e.ContentAt(row, col)
	if err != nil {
		return "__"
	}
	switch content {
	case game.ContentPawns:
		count, _ := t.e.PawnCountAt(row, col)
		owner, _ := t.e.OwnerAt(row, col)
		letter := "r"
		if owner == game.Blue {
			letter = "b"
		}
		return t.tint(fmt.Sprintf("%d%s", count, letter), owner)
	case game.ContentCard:
		owner, _ := t.e.OwnerAt(row, col)
		card, _, _ := t.e.CardAt(row, col)
		letter := "R"
		if owner == game.Blue {
			letter = "B"
		}
		return t.tint(fmt.Sprintf("%s%d", letter, card.Value), owner)
	default:
		return "__"
	}
}

func (t *Textual) tint(s string, p game.Player) string {
	switch p {
	case game.Red:
		return t.au.Red(s).String()
	case game.Blue:
		return t.au.Blue(s).String()
	default:
		return s
	}
}
