package experiments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/dcampbell24/hnefatafl-egui/engine"
	"github.com/dcampbell24/hnefatafl-egui/experiments/metrics"
	"github.com/dcampbell24/hnefatafl-egui/game"
	"github.com/dcampbell24/hnefatafl-egui/searcher"
)

const (
	NumGames   = 20 // Per match up
	TimeBudget = 500 * time.Millisecond
	Variant    = "brandubh" // Small board keeps experiment runs short
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "minimax", Depth: 1, Duration: TimeBudget},
	{ID: 2, Kind: "minimax", Depth: 2, Duration: TimeBudget},
	{ID: 3, Kind: "minimax", Depth: 3, Duration: TimeBudget},
	{ID: 4, Kind: "minimax", Depth: 4, Duration: TimeBudget},
}

// RunDepthToStrength pairs each depth against the depth-1 baseline to
// measure how much playing strength extra plies buy on each side.
func RunDepthToStrength() {
	baseline := metrics.AgentConfig{ID: 0, Kind: "minimax", Depth: 1, Duration: TimeBudget}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		// Both seat orders: attacker and defender are not symmetric
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}

	runExperiment("depth_to_strength", append(depthConfigs, baseline), matchUps)
}

// RunBaselineExperiment pits each minimax depth against a random mover,
// a sanity floor any searcher should clear.
func RunBaselineExperiment() {
	random := metrics.AgentConfig{ID: 0, Kind: "random", Seed: 1}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, random})
		matchUps = append(matchUps, []metrics.AgentConfig{random, config})
	}

	runExperiment("baseline", append(depthConfigs, random), matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	var mu sync.Mutex

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		// Games within a matchup are independent, so run them concurrently.
		// Each game builds its own agents; searchers are not shareable.
		group, ctx := errgroup.WithContext(context.Background())
		for i := 0; i < NumGames; i++ {
			group.Go(func() error {
				winner, gameMetric, moveMetrics, err := runGame(ctx, config1, config2)
				if err != nil {
					return err
				}

				mu.Lock()
				defer mu.Unlock()
				count++
				gameRecords = append(gameRecords, metrics.GameRecord{
					ID:         count,
					Agent1:     config1.ID,
					Agent2:     config2.ID,
					GameMetric: gameMetric,
				})
				for _, mm := range moveMetrics {
					moveRecords = append(moveRecords, metrics.MoveRecord{
						Game:       count,
						MoveMetric: mm,
					})
				}

				log.Info().Msgf("completed matchup %d of %d game with winner: %s", mi+1, len(matchUps), winner)
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			panic(fmt.Sprintf("matchup %d failed: %v", mi+1, err))
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	storeResults(name, configs, gameRecords, moveRecords)
}

func storeResults(name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored move records")
}

// runGame executes a single game between two agents and returns the winner
func runGame(ctx context.Context, config1, config2 metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	variant, err := game.NewVariant(Variant)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	e, err := engine.LocalEngine(variant, newAgent(config1), newAgent(config2))
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	_, gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return "", gameMetric, moveMetrics, err
	}

	return gameMetric.Winner, gameMetric, moveMetrics, nil
}

func newAgent(config metrics.AgentConfig) searcher.Agent {
	if config.Kind == "random" {
		return searcher.NewRandom(config.Seed)
	}

	options := []searcher.Option{}
	if config.Depth > 0 {
		options = append(options, searcher.WithMaxDepth(config.Depth))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	options = append(options, searcher.WithMetrics())
	return searcher.NewMinimax(options...)
}
