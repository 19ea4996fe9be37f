package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dcampbell24/hnefatafl-egui/experiments/metrics"
	"github.com/dcampbell24/hnefatafl-egui/game"
	"github.com/dcampbell24/hnefatafl-egui/searcher"
)

// Engine owns a game state and drives it to completion by asking each
// side's agent for a move in turn. It is the session controller: the game
// package itself never retains state across calls.
type Engine struct {
	State    *game.GameState
	Agents   [2]searcher.Agent // indexed by game.Side
	MaxMoves int
	Updates  []Update
}

func LocalEngine(v *game.Variant, attacker, defender searcher.Agent) (*Engine, error) {
	state, err := game.NewGameState(v)
	if err != nil {
		return nil, err
	}
	agents := [2]searcher.Agent{}
	agents[game.Attacker] = attacker
	agents[game.Defender] = defender
	return &Engine{
		State:    state,
		Agents:   agents,
		MaxMoves: MaxMoves,
	}, nil
}

// Run executes the game loop until a terminal status or the move cap is
// reached. The final status is returned together with per-game and
// per-move metrics.
func (e *Engine) Run(ctx context.Context) (game.Status, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	log.Info().Str("variant", e.State.Variant.Name).Msg("game starting")

	for e.State.Status == game.Ongoing && e.State.MoveCount < e.MaxMoves {
		side := e.State.SideToMove

		// Each agent searches its own copy of the state. A move computed
		// against a superseded state fails re-validation in Apply below.
		move, metric, err := e.Agents[side].FindMove(ctx, e.State.Copy())
		if err != nil {
			return e.State.Status, e.gameMetric(start), moveMetrics, fmt.Errorf("%s agent: %w", side, err)
		}

		next, captures, err := e.State.Apply(move)
		if err != nil {
			return e.State.Status, e.gameMetric(start), moveMetrics, fmt.Errorf("%s agent returned a stale or illegal move: %w", side, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         next.MoveCount,
			Side:         side.String(),
			SearchMetric: metric,
		})
		e.Updates = append(e.Updates, Update{
			Move:     move,
			Captures: captures,
			Hash:     next.Hash(),
			Status:   next.Status,
		})

		log.Debug().
			Int("turn", next.MoveCount).
			Str("side", side.String()).
			Str("move", move.String()).
			Int("captures", len(captures)).
			Msg("move applied")

		e.State = next
	}

	log.Info().
		Str("status", e.State.Status.String()).
		Int("moves", e.State.MoveCount).
		Msg("game over")

	return e.State.Status, e.gameMetric(start), moveMetrics, nil
}

func (e *Engine) gameMetric(start time.Time) metrics.GameMetric {
	return metrics.GameMetric{
		Variant:    e.State.Variant.Name,
		Winner:     winner(e.State.Status),
		StartTime:  start,
		EndTime:    time.Now(),
		Duration:   time.Since(start),
		TotalMoves: e.State.MoveCount,
	}
}

func winner(status game.Status) string {
	switch status {
	case game.AttackerWin:
		return game.Attacker.String()
	case game.DefenderWin:
		return game.Defender.String()
	default:
		return ""
	}
}
