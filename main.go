package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dcampbell24/hnefatafl-egui/engine"
	"github.com/dcampbell24/hnefatafl-egui/game"
	"github.com/dcampbell24/hnefatafl-egui/meta"
	"github.com/dcampbell24/hnefatafl-egui/searcher"
)

type config struct {
	variant  string
	depth    int
	duration time.Duration
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	runDemoGames()
}

func runDemoGames() {
	numGames := 3
	cfg := config{
		variant:  meta.VARIANT,
		depth:    meta.SEARCH_DEPTH,
		duration: meta.SEARCH_BUDGET_MS * time.Millisecond,
	}

	fmt.Printf("Running %d demo games of %s...\n", numGames, cfg.variant)
	for i := 0; i < numGames; i++ {
		fmt.Printf("Game %d started...\n", i+1)
		// Use the same config for both sides for similar playing strength
		winner, err := runGame(cfg, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("game failed")
		}
		if winner == "" {
			winner = "nobody (draw)"
		}
		fmt.Printf("Game %d over! Winner: %s\n", i+1, winner)
	}
	fmt.Printf("Finished demo games.\n")
}

// runGame executes a single game between two agents and returns the winner
func runGame(config1, config2 config) (string, error) {
	variant, err := game.NewVariant(config1.variant)
	if err != nil {
		return "", err
	}
	e, err := engine.LocalEngine(variant, createMinimax(config1), createMinimax(config2))
	if err != nil {
		return "", err
	}
	e.MaxMoves = meta.MAX_MOVES

	_, gameMetric, _, err := e.Run(context.Background())
	if err != nil {
		return "", err
	}

	return gameMetric.Winner, nil
}

func createMinimax(config config) *searcher.Minimax {
	options := []searcher.Option{}

	if config.depth > 0 {
		options = append(options, searcher.WithMaxDepth(config.depth))
	}
	if config.duration > 0 {
		options = append(options, searcher.WithDuration(config.duration))
	}

	return searcher.NewMinimax(options...)
}
