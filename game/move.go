package game

import "fmt"

// Move slides the piece on From to To along an empty orthogonal corridor.
// Immutable once created.
type Move struct {
	From Tile
	To   Tile
}

func (m Move) String() string {
	return fmt.Sprintf("%s-%s", m.From, m.To)
}
