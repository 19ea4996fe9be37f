package searcher

import (
	"context"
	"fmt"
	"time"

	"github.com/dcampbell24/hnefatafl-egui/experiments/metrics"
	"github.com/dcampbell24/hnefatafl-egui/game"
)

const (
	defaultMaxDepth  = 3
	defaultTableSize = 1 << 20
)

type Option func(m *Minimax)

func WithMaxDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

// WithDuration caps the wall-clock budget. The deepening loop stops at
// the first depth boundary after the allowance runs out; the depth budget
// still applies.
func WithDuration(duration time.Duration) Option {
	return func(m *Minimax) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithTableSize(size int) Option {
	return func(m *Minimax) {
		if size > 0 {
			m.tableSize = size
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

// Minimax selects moves by iterative-deepening minimax with alpha-beta
// pruning. The budget is depth-based; an optional duration option caps
// wall-clock time on top of it. A Minimax is not safe for concurrent
// FindMove calls; give each concurrent search its own instance.
type Minimax struct {
	maxDepth  int
	duration  time.Duration
	evaluate  game.Evaluate
	tableSize int
	table     *transpositionTable
	metrics   metrics.Collector
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		maxDepth:  defaultMaxDepth,
		evaluate:  game.EvaluatePosition,
		tableSize: defaultTableSize,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	m.table = newTranspositionTable(m.tableSize)
	return m
}

// FindMove returns the best move found within the budget, always a member
// of the state's legal move set. Deepening starts at depth 1; the first
// depth always completes, so a searchable state always yields a move.
// Cancellation and the time allowance are checked at depth boundaries and
// between root moves of deeper rounds: an interrupted round is discarded
// and the best move of the last fully completed depth is returned. Ties
// keep the move generator's deterministic ordering.
func (m *Minimax) FindMove(ctx context.Context, state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	m.metrics.Start(m.maxDepth, m.duration)
	m.table.reset()

	if state.Status != game.Ongoing {
		return game.Move{}, m.metrics.Complete(), fmt.Errorf("%w: status is %s", ErrInvalidSearchState, state.Status)
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, m.metrics.Complete(), fmt.Errorf("%w: %s has no legal moves", ErrInvalidSearchState, state.SideToMove)
	}

	var deadline time.Time
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}
	expired := func() bool {
		if ctx.Err() != nil {
			return true
		}
		return !deadline.IsZero() && time.Now().After(deadline)
	}

	var best game.Move
	found := false
	for depth := 1; depth <= m.maxDepth; depth++ {
		if found && expired() {
			break
		}
		move, score, complete := m.searchRoot(ctx, state, moves, depth)
		if !complete {
			break
		}
		best = move
		found = true
		m.metrics.SetDepth(depth)
		if score >= winThreshold || score <= -winThreshold {
			break // forced outcome, deeper search cannot improve it
		}
	}
	if !found {
		return game.Move{}, m.metrics.Complete(), ErrNoMoveFound
	}
	return best, m.metrics.Complete(), nil
}

// searchRoot runs one full-width round at the given depth. Depth 1 always
// runs to completion; deeper rounds abort between root moves once the
// budget expires, reporting complete=false.
func (m *Minimax) searchRoot(ctx context.Context, state *game.GameState, moves []game.Move, depth int) (game.Move, int, bool) {
	maximize := state.SideToMove == game.Attacker
	alpha, beta := -inf, inf
	best := moves[0]
	bestScore := 0

	for i, mv := range moves {
		if depth > 1 && i > 0 && ctx.Err() != nil {
			return best, bestScore, false
		}
		child, _, err := state.Apply(mv)
		if err != nil {
			panic(fmt.Sprintf("generated move %s failed to apply: %v", mv, err))
		}
		score := m.alphabeta(child, depth-1, alpha, beta)
		if i == 0 || (maximize && score > bestScore) || (!maximize && score < bestScore) {
			best = mv
			bestScore = score
		}
		if maximize {
			alpha = max(alpha, bestScore)
		} else {
			beta = min(beta, bestScore)
		}
	}
	return best, bestScore, true
}

func (m *Minimax) alphabeta(state *game.GameState, depth, alpha, beta int) int {
	m.metrics.AddState()
	if depth == 0 || state.Status != game.Ongoing {
		m.metrics.AddLeaf()
		return m.score(state, depth)
	}

	hash := state.Hash()
	if score, ok := m.table.lookup(hash, depth, alpha, beta); ok {
		m.metrics.AddTableHit()
		return score
	}
	alphaOrig, betaOrig := alpha, beta

	var value int
	if state.SideToMove == game.Attacker {
		value = -inf
		for _, mv := range state.LegalMoves() {
			child, _, err := state.Apply(mv)
			if err != nil {
				panic(fmt.Sprintf("generated move %s failed to apply: %v", mv, err))
			}
			value = max(value, m.alphabeta(child, depth-1, alpha, beta))
			alpha = max(alpha, value)
			if beta <= alpha {
				break
			}
		}
	} else {
		value = inf
		for _, mv := range state.LegalMoves() {
			child, _, err := state.Apply(mv)
			if err != nil {
				panic(fmt.Sprintf("generated move %s failed to apply: %v", mv, err))
			}
			value = min(value, m.alphabeta(child, depth-1, alpha, beta))
			beta = min(beta, value)
			if beta <= alpha {
				break
			}
		}
	}

	m.table.store(hash, depth, value, alphaOrig, betaOrig)
	return value
}

// score rates a leaf. Terminal states carry a proximity penalty so that
// wins found closer to the root outrank equal wins found deeper.
func (m *Minimax) score(state *game.GameState, depth int) int {
	prox := proximityBase - depth
	switch state.Status {
	case game.AttackerWin:
		return game.AttackerWinScore - prox
	case game.DefenderWin:
		return game.DefenderWinScore + prox
	case game.Draw:
		return 0
	}
	return m.evaluate(state)
}
