package game

import (
	"sync"

	"lukechampine.com/frand"
)

// Zobrist hashing over board positions, used for repetition detection and
// the searcher's transposition table.
// https://en.wikipedia.org/wiki/Zobrist_hashing

const bignum = 1<<63 - 2

type zobristTable struct {
	pieces         [][3]uint64 // per tile: attacker soldier, defender soldier, king
	defenderToMove uint64
}

var (
	ztablesMu sync.Mutex
	ztables   = make(map[uint8]*zobristTable)
)

// zobristFor returns the table for a board length, building it on first
// use. Tables are process-global so that equal positions hash equally
// across independent states.
func zobristFor(boardLen uint8) *zobristTable {
	ztablesMu.Lock()
	defer ztablesMu.Unlock()

	if zt, ok := ztables[boardLen]; ok {
		return zt
	}
	n := int(boardLen) * int(boardLen)
	zt := &zobristTable{pieces: make([][3]uint64, n)}
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			zt.pieces[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	zt.defenderToMove = frand.Uint64n(bignum) + 1
	ztables[boardLen] = zt
	return zt
}

func pieceIndex(p Piece) int {
	switch p {
	case AttackerSoldier:
		return 0
	case DefenderSoldier:
		return 1
	default:
		return 2
	}
}

// Hash returns the zobrist hash of the position including the side to
// move.
func (gs *GameState) Hash() uint64 {
	zt := zobristFor(gs.Board.Len())
	var h uint64
	if gs.SideToMove == Defender {
		h ^= zt.defenderToMove
	}
	for i, p := range gs.Board.tiles {
		if p != Empty {
			h ^= zt.pieces[i][pieceIndex(p)]
		}
	}
	return h
}
