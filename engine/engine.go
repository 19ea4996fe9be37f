package engine

import "github.com/dcampbell24/hnefatafl-egui/game"

// MaxMoves stops runaway games between weak agents that never force a
// terminal state.
const MaxMoves = 1000

// Update describes one applied move, for observers such as a UI layer.
type Update struct {
	Move     game.Move
	Captures game.CaptureEvent
	Hash     uint64
	Status   game.Status
}
