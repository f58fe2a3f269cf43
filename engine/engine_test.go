package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"pawnsboard/game"
)

// testCards builds n distinct cost-1 cards whose only influence cell sits
// directly north of the anchor.
func testCards(n int) []game.Card {
	var north game.InfluenceGrid
	north[1][2] = true
	cards := make([]game.Card, n)
	for i := range cards {
		cards[i] = game.Card{
			Name:      fmt.Sprintf("Card%02d", i),
			Cost:      1,
			Value:     2,
			Influence: north,
		}
	}
	return cards
}

func fixedSource(cards []game.Card) game.DeckSource {
	return func() ([]game.Card, []game.Card, error) {
		red := append([]game.Card(nil), cards...)
		blue := append([]game.Card(nil), cards...)
		return red, blue, nil
	}
}

func startedEngine(t *testing.T, rows, cols, handSize, deckSize int) *Engine {
	t.Helper()
	e := New(fixedSource(testCards(deckSize)))
	require.NoError(t, e.StartGame(rows, cols, handSize))
	return e
}

func TestStartGameInitialBoard(t *testing.T) {
	e := startedEngine(t, 3, 5, 2, 15)

	require.True(t, e.IsStarted())
	require.False(t, e.IsOver())

	current, err := e.CurrentPlayer()
	require.NoError(t, err)
	require.Equal(t, game.Red, current)

	rows, cols, err := e.Dimensions()
	require.NoError(t, err)
	require.Equal(t, 3, rows)
	require.Equal(t, 5, cols)

	for r := 0; r < 3; r++ {
		for c := 0; c < 5; c++ {
			content, err := e.ContentAt(r, c)
			require.NoError(t, err)
			switch c {
			case 0, 4:
				require.Equal(t, game.ContentPawns, content, "cell (%d,%d)", r, c)
				owner, _ := e.OwnerAt(r, c)
				want := game.Red
				if c == 4 {
					want = game.Blue
				}
				require.Equal(t, want, owner)
				count, _ := e.PawnCountAt(r, c)
				require.Equal(t, 1, count)
			default:
				require.Equal(t, game.ContentEmpty, content, "cell (%d,%d)", r, c)
			}
		}
	}

	// Both hands at the starting size; the first player's opening draw is a
	// no-op because the hand is already at the cap.
	for _, p := range []game.Player{game.Red, game.Blue} {
		hand, err := e.Hand(p)
		require.NoError(t, err)
		require.Len(t, hand, 2)
		size, err := e.DeckSize(p)
		require.NoError(t, err)
		require.Equal(t, 13, size)
	}
}

func TestStartGameValidation(t *testing.T) {
	source := fixedSource(testCards(15))

	require.ErrorIs(t, New(source).StartGame(0, 5, 2), game.ErrInvalidDimensions)
	require.ErrorIs(t, New(source).StartGame(3, 4, 2), game.ErrInvalidDimensions)
	require.ErrorIs(t, New(source).StartGame(3, 1, 2), game.ErrInvalidDimensions)

	// Decks must cover the whole board.
	small := fixedSource(testCards(14))
	require.ErrorIs(t, New(small).StartGame(3, 5, 2), game.ErrInvalidDeckConfiguration)

	// Hand size above a third of the deck.
	require.ErrorIs(t, New(source).StartGame(3, 5, 6), game.ErrInvalidDeckConfiguration)
	require.NoError(t, New(source).StartGame(3, 5, 5))

	// Negative hand sizes are rejected, not sliced.
	require.ErrorIs(t, New(source).StartGame(3, 5, -1), game.ErrInvalidDeckConfiguration)

	// Source errors propagate.
	boom := errors.New("boom")
	failing := game.DeckSource(func() ([]game.Card, []game.Card, error) {
		return nil, nil, boom
	})
	require.ErrorIs(t, New(failing).StartGame(3, 5, 2), boom)
}

func TestStartGameRejectsRestartWhileRunning(t *testing.T) {
	e := startedEngine(t, 3, 5, 2, 15)

	require.ErrorIs(t, e.StartGame(3, 5, 2), game.ErrGameInProgress)

	// The running session is untouched.
	current, err := e.CurrentPlayer()
	require.NoError(t, err)
	require.Equal(t, game.Red, current)
	hand, _ := e.Hand(game.Red)
	require.Len(t, hand, 2)

	// A finished game can be restarted for a rematch.
	require.NoError(t, e.PassTurn())
	require.NoError(t, e.PassTurn())
	require.True(t, e.IsOver())
	require.NoError(t, e.StartGame(3, 5, 2))
	require.False(t, e.IsOver())
	current, _ = e.CurrentPlayer()
	require.Equal(t, game.Red, current)
}

func TestPlaceCard(t *testing.T) {
	e := startedEngine(t, 3, 5, 2, 15)

	// Red plays onto their own pawn at (1,0); the card's influence hits
	// (0,0), growing Red's pawn there.
	require.NoError(t, e.PlaceCard(0, 1, 0))

	content, _ := e.ContentAt(1, 0)
	require.Equal(t, game.ContentCard, content)
	owner, _ := e.OwnerAt(1, 0)
	require.Equal(t, game.Red, owner)
	card, ok, _ := e.CardAt(1, 0)
	require.True(t, ok)
	require.Equal(t, "Card00", card.Name)

	count, _ := e.PawnCountAt(0, 0)
	require.Equal(t, 2, count, "influence grew the northern pawn")

	// Turn switched, Red drew back to the cap.
	current, _ := e.CurrentPlayer()
	require.Equal(t, game.Blue, current)
	redHand, _ := e.Hand(game.Red)
	require.Len(t, redHand, 2)
	redDeck, _ := e.DeckSize(game.Red)
	require.Equal(t, 12, redDeck)
}

func TestPlaceCardInfluenceClippedAtTopRow(t *testing.T) {
	e := startedEngine(t, 3, 5, 2, 15)

	// The test card influences the cell directly north; at row 0 that is
	// off the board and must be clipped without error.
	require.NoError(t, e.PlaceCard(0, 0, 0))

	content, _ := e.ContentAt(0, 0)
	require.Equal(t, game.ContentCard, content)
	owner, _ := e.OwnerAt(0, 0)
	require.Equal(t, game.Red, owner)
}

func TestPlaceCardValidationLeavesStateUnchanged(t *testing.T) {
	expensive := testCards(15)
	expensive[0].Cost = 3
	e := New(fixedSource(expensive))
	require.NoError(t, e.StartGame(3, 5, 2))

	assertUntouched := func() {
		t.Helper()
		current, _ := e.CurrentPlayer()
		require.Equal(t, game.Red, current)
		hand, _ := e.Hand(game.Red)
		require.Len(t, hand, 2)
		content, _ := e.ContentAt(0, 0)
		require.Equal(t, game.ContentPawns, content)
		count, _ := e.PawnCountAt(0, 0)
		require.Equal(t, 1, count)
	}

	require.ErrorIs(t, e.PlaceCard(0, 3, 0), game.ErrOutOfBounds)
	assertUntouched()
	require.ErrorIs(t, e.PlaceCard(-1, 0, 0), game.ErrInvalidCardIndex)
	assertUntouched()
	require.ErrorIs(t, e.PlaceCard(2, 0, 0), game.ErrInvalidCardIndex)
	assertUntouched()
	require.ErrorIs(t, e.PlaceCard(0, 0, 2), game.ErrNotPawns)
	assertUntouched()
	require.ErrorIs(t, e.PlaceCard(0, 0, 4), game.ErrWrongOwner)
	assertUntouched()
	// Card 0 costs 3, the home cell holds a single pawn.
	require.ErrorIs(t, e.PlaceCard(0, 0, 0), game.ErrInsufficientPawns)
	assertUntouched()
}

func TestPlaceCardBeforeStart(t *testing.T) {
	e := New(fixedSource(testCards(15)))
	require.ErrorIs(t, e.PlaceCard(0, 0, 0), game.ErrGameNotStarted)
	require.ErrorIs(t, e.PassTurn(), game.ErrGameNotStarted)
	_, err := e.CurrentPlayer()
	require.ErrorIs(t, err, game.ErrGameNotStarted)
}

func TestTurnAlternation(t *testing.T) {
	e := startedEngine(t, 3, 5, 2, 15)

	require.NoError(t, e.PlaceCard(0, 0, 0))
	current, _ := e.CurrentPlayer()
	require.Equal(t, game.Blue, current)

	require.NoError(t, e.PassTurn())
	current, _ = e.CurrentPlayer()
	require.Equal(t, game.Red, current)
	require.False(t, e.IsOver())
}

func TestPlacementResetsPassFlag(t *testing.T) {
	e := startedEngine(t, 3, 5, 2, 15)

	require.NoError(t, e.PassTurn())         // Red passes
	require.NoError(t, e.PlaceCard(0, 0, 4)) // Blue places, clearing the flag
	require.NoError(t, e.PassTurn())         // Red passes again
	require.False(t, e.IsOver(), "non-consecutive passes do not end the game")
	require.NoError(t, e.PassTurn()) // Blue passes: two in a row
	require.True(t, e.IsOver())
}

func TestTwoConsecutivePassesEndTheGame(t *testing.T) {
	e := startedEngine(t, 3, 5, 2, 15)

	_, err := e.Winner()
	require.ErrorIs(t, err, game.ErrGameNotOver)

	require.NoError(t, e.PassTurn())
	require.NoError(t, e.PassTurn())
	require.True(t, e.IsOver())

	// No cards were placed: every row is 0-0, the game is a draw.
	winner, err := e.Winner()
	require.NoError(t, err)
	require.Equal(t, game.None, winner)

	// The second pass neither switches the turn nor draws.
	current, _ := e.CurrentPlayer()
	require.Equal(t, game.Blue, current)

	// The session is frozen apart from reads.
	require.ErrorIs(t, e.PassTurn(), game.ErrGameNotInProgress)
	require.ErrorIs(t, e.PlaceCard(0, 0, 0), game.ErrGameNotInProgress)
	_, _, err = e.TotalScore()
	require.NoError(t, err)
}

func TestDrawSkippedWhenHandFull(t *testing.T) {
	e := startedEngine(t, 3, 5, 2, 15)

	// Red passes; Blue's hand is already at the cap, so no draw happens.
	require.NoError(t, e.PassTurn())
	hand, _ := e.Hand(game.Blue)
	require.Len(t, hand, 2)
	size, _ := e.DeckSize(game.Blue)
	require.Equal(t, 13, size)
}

func TestDrawSkippedWhenDeckEmpty(t *testing.T) {
	// Minimal 1x3 game: decks of exactly 3, hand of 1.
	e := startedEngine(t, 1, 3, 1, 3)

	// Red plays their only card; Blue's draw is skipped (hand full), then
	// Blue plays and Red draws the next deck card.
	require.NoError(t, e.PlaceCard(0, 0, 0))
	require.NoError(t, e.PlaceCard(0, 0, 2))

	redHand, _ := e.Hand(game.Red)
	require.Len(t, redHand, 1)
	redDeck, _ := e.DeckSize(game.Red)
	require.Equal(t, 1, redDeck)

	// Neither side has pawns left to play on; both pass out.
	require.NoError(t, e.PassTurn())
	require.NoError(t, e.PassTurn())
	require.True(t, e.IsOver())

	winner, err := e.Winner()
	require.NoError(t, err)
	require.Equal(t, game.None, winner, "single row tied 2-2")
}

func TestScoringThroughEngine(t *testing.T) {
	e := startedEngine(t, 3, 5, 2, 15)

	require.NoError(t, e.PlaceCard(0, 0, 0)) // Red, value 2 in row 0
	require.NoError(t, e.PassTurn())         // Blue passes
	require.NoError(t, e.PlaceCard(0, 1, 0)) // Red, value 2 in row 1
	require.NoError(t, e.PassTurn())         // Blue passes
	require.NoError(t, e.PassTurn())         // Red passes: game over

	red, blue, err := e.RowScores(0)
	require.NoError(t, err)
	require.Equal(t, 2, red)
	require.Zero(t, blue)

	red, blue, err = e.TotalScore()
	require.NoError(t, err)
	require.Equal(t, 4, red)
	require.Zero(t, blue)

	winner, err := e.Winner()
	require.NoError(t, err)
	require.Equal(t, game.Red, winner)
}

func TestLegalPlacements(t *testing.T) {
	e := startedEngine(t, 3, 5, 2, 15)

	// Two cost-1 cards playable on each of Red's three home cells.
	moves := e.LegalPlacements()
	require.Len(t, moves, 6)
	for _, m := range moves {
		require.Zero(t, m.Col, "all of Red's pawns start in column 0")
	}

	require.NoError(t, e.PassTurn())
	require.NoError(t, e.PassTurn())
	require.Nil(t, e.LegalPlacements(), "no placements once the game is over")
}

func TestHandIsDefensiveCopy(t *testing.T) {
	e := startedEngine(t, 3, 5, 2, 15)

	hand, err := e.Hand(game.Red)
	require.NoError(t, err)
	hand[0] = game.Card{Name: "Tampered", Cost: 1, Value: 99}

	fresh, _ := e.Hand(game.Red)
	require.Equal(t, "Card00", fresh[0].Name)

	_, err = e.Hand(game.None)
	require.Error(t, err)
}

func TestOptions(t *testing.T) {
	id := uuid.MustParse("8e9f0a1b-2c3d-4e5f-8091-a2b3c4d5e6f7")
	e := New(fixedSource(testCards(15)), WithID(id))
	require.Equal(t, id, e.ID())

	// A failing factory surfaces through StartGame.
	e = New(fixedSource(testCards(15)), WithBoardFactory(failingFactory{}))
	require.ErrorIs(t, e.StartGame(3, 5, 2), game.ErrInvalidDimensions)
}

type failingFactory struct{}

func (failingFactory) NewBoard(rows, cols int) (*game.Board, error) {
	return nil, game.ErrInvalidDimensions
}
