// meta/meta.go
package meta

// SEARCH_DEPTH is the default minimax depth budget.
const SEARCH_DEPTH = 3

// SEARCH_BUDGET_MS is the default per-move wall-clock allowance.
const SEARCH_BUDGET_MS = 500

// MAX_MOVES caps the number of moves in an engine-driven game.
const MAX_MOVES = 300

// VARIANT is the default rule set preset.
const VARIANT = "copenhagen"
