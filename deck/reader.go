// Package deck builds the card decks the engine consumes: parsing card
// definitions from text or JSON files, validating deck composition, and
// shuffling. The engine itself never reorders decks, so any shuffling happens
// here.
package deck

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"pawnsboard/game"
)

// ReadCards parses the text card-config format. Each card is a header line
// "NAME COST VALUE" followed by five rows of five characters: 'I' for an
// influenced cell, 'X' for an inert one, and 'C' at the center marking the
// card's own position.
func ReadCards(r io.Reader) ([]game.Card, error) {
	scanner := bufio.NewScanner(r)
	var cards []game.Card

	for {
		header, ok := nextLine(scanner)
		if !ok {
			break
		}
		fields := strings.Fields(header)
		if len(fields) != 3 {
			return nil, fmt.Errorf("card %d: header must be \"NAME COST VALUE\", got %q",
				len(cards)+1, header)
		}
		cost, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("card %q: invalid cost %q", fields[0], fields[1])
		}
		value, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("card %q: invalid value %q", fields[0], fields[2])
		}

		var rows [game.GridSize]string
		for i := range rows {
			line, ok := nextLine(scanner)
			if !ok {
				return nil, fmt.Errorf("card %q: influence grid is truncated", fields[0])
			}
			rows[i] = line
		}
		grid, err := parseInfluenceRows(rows)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", fields[0], err)
		}

		card, err := game.NewCard(fields[0], cost, value, grid)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("no cards found")
	}
	return cards, nil
}

// ReadCardFile reads the text card-config format from a file.
func ReadCardFile(path string) ([]game.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening card config: %w", err)
	}
	defer f.Close()
	cards, err := ReadCards(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cards, nil
}

// nextLine returns the next non-blank line, trimmed of trailing whitespace.
func nextLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) != "" {
			return line, true
		}
	}
	return "", false
}

// parseInfluenceRows converts five character rows into an influence grid,
// requiring 'C' exactly at the center and only 'I'/'X' elsewhere.
func parseInfluenceRows(rows [game.GridSize]string) (game.InfluenceGrid, error) {
	var grid game.InfluenceGrid
	for r, row := range rows {
		if len(row) != game.GridSize {
			return grid, fmt.Errorf("influence row %d must have %d characters, got %q",
				r, game.GridSize, row)
		}
		for c := 0; c < game.GridSize; c++ {
			center := r == game.GridSize/2 && c == game.GridSize/2
			switch row[c] {
			case 'C':
				if !center {
					return grid, fmt.Errorf("'C' outside the grid center at (%d, %d)", r, c)
				}
			case 'I':
				if center {
					return grid, fmt.Errorf("grid center must be 'C'")
				}
				grid[r][c] = true
			case 'X':
				if center {
					return grid, fmt.Errorf("grid center must be 'C'")
				}
			default:
				return grid, fmt.Errorf("invalid influence character %q at (%d, %d)",
					string(row[c]), r, c)
			}
		}
	}
	return grid, nil
}
