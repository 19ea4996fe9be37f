package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove reports a move that is not in the current legal set.
	// Recoverable: the caller should re-derive the legal moves.
	ErrIllegalMove = errors.New("illegal move")
	// ErrGameOver reports an Apply call on a terminal state.
	ErrGameOver = errors.New("game is over")
)

// ConfigurationError reports an inconsistent variant definition. It is
// raised at construction time only, never during play.
type ConfigurationError struct {
	Variant string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid variant %q: %s", e.Variant, e.Reason)
}
