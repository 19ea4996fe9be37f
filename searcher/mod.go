package searcher

import (
	"context"
	"errors"

	"github.com/dcampbell24/hnefatafl-egui/experiments/metrics"
	"github.com/dcampbell24/hnefatafl-egui/game"
)

var (
	// ErrInvalidSearchState reports a search on a terminal or moveless
	// state. This is a caller bug, not a user-facing condition.
	ErrInvalidSearchState = errors.New("searcher: state is not searchable")
	// ErrNoMoveFound reports that the search finished without completing
	// its first depth. It should be unreachable for a searchable state.
	ErrNoMoveFound = errors.New("searcher: search completed without a move")
)

// Agent selects a move for the side to play in the given state.
type Agent interface {
	FindMove(ctx context.Context, state *game.GameState) (game.Move, metrics.SearchMetric, error)
}

// Scores are bounded by the evaluation win scores; anything outside that
// range works as an alpha-beta sentinel.
const inf = 1 << 40

// Terminal scores carry a penalty that grows with distance from the
// root, so the search prefers quick wins and slow losses. Scores past
// winThreshold mean a forced outcome and stop the deepening loop.
const (
	proximityBase = 255
	winThreshold  = game.AttackerWinScore - proximityBase
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
