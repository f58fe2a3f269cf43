// Command pawnsboard runs a scripted demo game on a 3x5 board, or a batch of
// random-vs-random games with -simulate.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"pawnsboard/controller"
	"pawnsboard/deck"
	"pawnsboard/engine"
	"pawnsboard/game"
	"pawnsboard/view"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var (
		deckPath = flag.String("deck", getEnv("DECK_PATH", filepath.Join("docs", "3x5_demo.config")),
			"card config file (.json for the JSON format, text otherwise)")
		rows     = flag.Int("rows", envInt("ROWS", 3), "board rows")
		cols     = flag.Int("cols", envInt("COLS", 5), "board columns (odd, > 1)")
		handSize = flag.Int("hand", envInt("HAND_SIZE", 5), "starting hand size")
		simulate = flag.Int("simulate", 0, "run N random-vs-random games instead of the scripted demo")
		seed     = flag.Uint64("seed", 0, "shuffle and controller seed, 0 for time-based")
		color    = flag.Bool("color", true, "colorize board output")
	)
	flag.Parse()

	if *simulate > 0 {
		runSimulation(*deckPath, *rows, *cols, *handSize, *simulate, *seed)
		return
	}
	runDemo(*deckPath, *rows, *cols, *handSize, *color)
}

// runDemo plays through a fixed sequence of moves, rendering the game after
// each one: both players fill their home columns top to bottom, then both
// pass, ending the game.
func runDemo(deckPath string, rows, cols, handSize int, color bool) {
	e := engine.New(deckSource(deckPath, false, 0))
	if err := e.StartGame(rows, cols, handSize); err != nil {
		log.Fatal().Err(err).Msg("could not start game")
	}
	v := view.NewTextual(e, color)

	fmt.Println(v.RenderGameState("Game Start"))
	fmt.Println()

	steps := []struct {
		desc string
		do   func() error
	}{
		{"RED places a card at (0,0)", func() error { return e.PlaceCard(0, 0, 0) }},
		{"BLUE places a card at (0," + strconv.Itoa(cols-1) + ")", func() error { return e.PlaceCard(0, 0, cols-1) }},
		{"RED places a card at (1,0)", func() error { return e.PlaceCard(0, 1, 0) }},
		{"BLUE places a card at (1," + strconv.Itoa(cols-1) + ")", func() error { return e.PlaceCard(0, 1, cols-1) }},
		{"RED places a card at (2,0)", func() error { return e.PlaceCard(0, 2, 0) }},
		{"BLUE passes", e.PassTurn},
		{"RED passes", e.PassTurn},
	}
	for _, s := range steps {
		if err := s.do(); err != nil {
			log.Warn().Err(err).Str("step", s.desc).Msg("demo move rejected")
			continue
		}
		fmt.Println(v.RenderGameState(s.desc))
		fmt.Println()
	}
}

// runSimulation plays n games between two random controllers and prints the
// aggregate outcome.
func runSimulation(deckPath string, rows, cols, handSize, n int, seed uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	bar := progressbar.NewOptions(n,
		progressbar.OptionSetDescription("simulating"),
		progressbar.OptionSetWidth(50),
	)

	wins := map[game.Player]int{}
	for i := 0; i < n; i++ {
		gameSeed := seed + uint64(i)*3
		e := engine.New(deckSource(deckPath, true, gameSeed))
		if err := e.StartGame(rows, cols, handSize); err != nil {
			log.Fatal().Err(err).Msg("could not start game")
		}

		controllers := map[game.Player]controller.Controller{
			game.Red:  controller.NewRandom(gameSeed + 1),
			game.Blue: controller.NewRandom(gameSeed + 2),
		}
		const maxTurns = 10000
		for turn := 0; !e.IsOver(); turn++ {
			if turn >= maxTurns {
				log.Warn().Str("game", e.ID().String()).Msg("turn cap reached, abandoning game")
				break
			}
			p, _ := e.CurrentPlayer()
			if err := controllers[p].Act(e); err != nil {
				log.Fatal().Err(err).Msg("controller made an illegal move")
			}
		}
		if e.IsOver() {
			w, _ := e.Winner()
			wins[w]++
		}
		_ = bar.Add(1)
	}
	fmt.Println()
	fmt.Printf("RED wins:  %d\n", wins[game.Red])
	fmt.Printf("BLUE wins: %d\n", wins[game.Blue])
	fmt.Printf("Draws:     %d\n", wins[game.None])
}

// deckSource picks the reader by file extension.
func deckSource(path string, shuffle bool, seed uint64) game.DeckSource {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return deck.JSONFileSource(path, shuffle, seed)
	}
	return deck.FileSource(path, shuffle, seed)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
