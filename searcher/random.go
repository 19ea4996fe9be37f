package searcher

import (
	"context"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/dcampbell24/hnefatafl-egui/experiments/metrics"
	"github.com/dcampbell24/hnefatafl-egui/game"
)

// Random is a baseline agent that plays a uniformly random legal move.
// Useful as a sparring partner for experiments and tests.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(ctx context.Context, state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	if state.Status != game.Ongoing {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: status is %s", ErrInvalidSearchState, state.Status)
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: %s has no legal moves", ErrInvalidSearchState, state.SideToMove)
	}
	return moves[r.rng.Intn(len(moves))], metrics.SearchMetric{States: 1}, nil
}
