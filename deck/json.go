package deck

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"pawnsboard/game"
)

// cardJSON mirrors one card in a JSON deck file. The influence rows use the
// same alphabet as the text format.
type cardJSON struct {
	Name      string   `json:"name"`
	Cost      int      `json:"cost"`
	Value     int      `json:"value"`
	Influence []string `json:"influence"`
}

// ReadCardsJSON parses a JSON deck: an array of cards, each with name, cost,
// value and five influence rows.
func ReadCardsJSON(data []byte) ([]game.Card, error) {
	var raw []cardJSON
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding deck JSON: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no cards found")
	}

	cards := make([]game.Card, 0, len(raw))
	for _, rc := range raw {
		if len(rc.Influence) != game.GridSize {
			return nil, fmt.Errorf("card %q: influence must have %d rows, got %d",
				rc.Name, game.GridSize, len(rc.Influence))
		}
		var rows [game.GridSize]string
		copy(rows[:], rc.Influence)
		grid, err := parseInfluenceRows(rows)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", rc.Name, err)
		}
		card, err := game.NewCard(rc.Name, rc.Cost, rc.Value, grid)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// ReadCardFileJSON reads a JSON deck file.
func ReadCardFileJSON(path string) ([]game.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck JSON: %w", err)
	}
	cards, err := ReadCardsJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cards, nil
}
