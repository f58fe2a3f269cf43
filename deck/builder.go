package deck

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"pawnsboard/game"
)

// maxCopies is the composition rule: at most two copies of any card name per
// deck.
const maxCopies = 2

// CardsSource builds a deck source from an in-memory card list. Both players
// draw from identically-authored decks; the influence mirroring for Blue is
// the engine's job and happens exactly once, at placement. With shuffle set,
// each deck is shuffled independently; seed 0 means time-based.
func CardsSource(cards []game.Card, shuffle bool, seed uint64) game.DeckSource {
	return func() ([]game.Card, []game.Card, error) {
		return buildDecks(cards, shuffle, seed)
	}
}

// FileSource builds a deck source reading the text card-config at path.
func FileSource(path string, shuffle bool, seed uint64) game.DeckSource {
	return func() ([]game.Card, []game.Card, error) {
		cards, err := ReadCardFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", game.ErrInvalidDeckConfiguration, err)
		}
		return buildDecks(cards, shuffle, seed)
	}
}

// JSONFileSource builds a deck source reading a JSON deck file at path.
func JSONFileSource(path string, shuffle bool, seed uint64) game.DeckSource {
	return func() ([]game.Card, []game.Card, error) {
		cards, err := ReadCardFileJSON(path)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", game.ErrInvalidDeckConfiguration, err)
		}
		return buildDecks(cards, shuffle, seed)
	}
}

func buildDecks(cards []game.Card, shuffle bool, seed uint64) (red, blue []game.Card, err error) {
	if err := validateComposition(cards); err != nil {
		return nil, nil, err
	}

	red = append([]game.Card(nil), cards...)
	blue = append([]game.Card(nil), cards...)

	if shuffle {
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(len(red), func(i, j int) {
			red[i], red[j] = red[j], red[i]
		})
		rng.Shuffle(len(blue), func(i, j int) {
			blue[i], blue[j] = blue[j], blue[i]
		})
	}
	return red, blue, nil
}

func validateComposition(cards []game.Card) error {
	counts := make(map[string]int, len(cards))
	for _, c := range cards {
		counts[c.Name]++
		if counts[c.Name] > maxCopies {
			return fmt.Errorf("%w: more than %d copies of card %q",
				game.ErrInvalidDeckConfiguration, maxCopies, c.Name)
		}
	}
	return nil
}
