package searcher

type ttFlag uint8

const (
	ttExact ttFlag = iota
	ttLower
	ttUpper
)

type ttEntry struct {
	score int
	depth int
	flag  ttFlag
}

// transpositionTable caches alpha-beta results keyed by position hash.
// Entries stop being added once the size cap is reached; existing keys
// may still be refreshed.
type transpositionTable struct {
	entries map[uint64]ttEntry
	size    int
}

func newTranspositionTable(size int) *transpositionTable {
	return &transpositionTable{
		entries: make(map[uint64]ttEntry),
		size:    size,
	}
}

func (t *transpositionTable) reset() {
	t.entries = make(map[uint64]ttEntry)
}

// lookup returns a cached score usable at the given depth and window.
func (t *transpositionTable) lookup(hash uint64, depth, alpha, beta int) (int, bool) {
	e, ok := t.entries[hash]
	if !ok || e.depth < depth {
		return 0, false
	}
	switch e.flag {
	case ttExact:
		return e.score, true
	case ttLower:
		if e.score >= beta {
			return e.score, true
		}
	case ttUpper:
		if e.score <= alpha {
			return e.score, true
		}
	}
	return 0, false
}

func (t *transpositionTable) store(hash uint64, depth, score, alphaOrig, betaOrig int) {
	if len(t.entries) >= t.size {
		if _, ok := t.entries[hash]; !ok {
			return
		}
	}
	flag := ttExact
	if score <= alphaOrig {
		flag = ttUpper
	} else if score >= betaOrig {
		flag = ttLower
	}
	t.entries[hash] = ttEntry{score: score, depth: depth, flag: flag}
}
