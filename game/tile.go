package game

import "fmt"

// Tile is a coordinate on the board. Row 0 is the top rank, col 0 the
// leftmost file.
type Tile struct {
	Row uint8
	Col uint8
}

func (t Tile) String() string {
	return fmt.Sprintf("%c%d", 'a'+t.Col, int(t.Row)+1)
}

type direction struct {
	dr int
	dc int
}

// Fixed scan order: up, down, left, right. Move generation and capture
// checks iterate in this order so results are reproducible.
var directions = [4]direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// step returns the tile one square away in the given direction and whether
// it lies on a board of the given length.
func step(t Tile, d direction, boardLen uint8) (Tile, bool) {
	r := int(t.Row) + d.dr
	c := int(t.Col) + d.dc
	if r < 0 || c < 0 || r >= int(boardLen) || c >= int(boardLen) {
		return Tile{}, false
	}
	return Tile{Row: uint8(r), Col: uint8(c)}, true
}
