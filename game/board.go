package game

import "strings"

// Board is a fixed-size square grid of pieces. The zero Board is not
// usable; construct one through a Variant.
type Board struct {
	len   uint8
	tiles []Piece
}

func newBoard(len uint8) Board {
	return Board{len: len, tiles: make([]Piece, int(len)*int(len))}
}

// Copy returns a board whose tiles are independent of the receiver's.
func (b Board) Copy() Board {
	tiles := make([]Piece, len(b.tiles))
	copy(tiles, b.tiles)
	return Board{len: b.len, tiles: tiles}
}

// Len returns the side length of the board in tiles.
func (b Board) Len() uint8 {
	return b.len
}

func (b Board) index(t Tile) int {
	return int(t.Row)*int(b.len) + int(t.Col)
}

// Get returns the occupant of a tile.
func (b Board) Get(t Tile) Piece {
	return b.tiles[b.index(t)]
}

// Set places a piece on a tile, overwriting the previous occupant.
func (b Board) Set(t Tile, p Piece) {
	b.tiles[b.index(t)] = p
}

// Count returns the number of pieces belonging to a side. The king counts
// toward the defender.
func (b Board) Count(side Side) int {
	n := 0
	for _, p := range b.tiles {
		if s, ok := p.Side(); ok && s == side {
			n++
		}
	}
	return n
}

// King returns the king's tile. The second return value is false if no
// king is on the board (only possible after an attacker win).
func (b Board) King() (Tile, bool) {
	for i, p := range b.tiles {
		if p == King {
			return Tile{Row: uint8(i / int(b.len)), Col: uint8(i % int(b.len))}, true
		}
	}
	return Tile{}, false
}

// Occupied returns the tiles holding pieces of a side, in row-major order.
func (b Board) Occupied(side Side) []Tile {
	var tiles []Tile
	for i, p := range b.tiles {
		if s, ok := p.Side(); ok && s == side {
			tiles = append(tiles, Tile{Row: uint8(i / int(b.len)), Col: uint8(i % int(b.len))})
		}
	}
	return tiles
}

// Equal reports whether two boards hold identical positions.
func (b Board) Equal(other Board) bool {
	if b.len != other.len {
		return false
	}
	for i, p := range b.tiles {
		if other.tiles[i] != p {
			return false
		}
	}
	return true
}

func (b Board) String() string {
	var sb strings.Builder
	for r := uint8(0); r < b.len; r++ {
		for c := uint8(0); c < b.len; c++ {
			sb.WriteString(b.Get(Tile{Row: r, Col: c}).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
