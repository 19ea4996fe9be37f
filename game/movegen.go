package game

// LegalMoves returns every legal move for the side to play, exhaustive and
// duplicate-free. Ordering is deterministic: origin tiles in row-major
// order, then direction (up, down, left, right), then distance. An empty
// result means the side has no legal move. The board is not mutated.
func (gs *GameState) LegalMoves() []Move {
	if gs.Status != Ongoing {
		return nil
	}
	var moves []Move
	for _, from := range gs.Board.Occupied(gs.SideToMove) {
		moves = append(moves, gs.MovesFrom(from)...)
	}
	return moves
}

// MovesFrom returns the legal moves for the piece on from, in the same
// deterministic order as LegalMoves. An empty or enemy origin yields none.
func (gs *GameState) MovesFrom(from Tile) []Move {
	p := gs.Board.Get(from)
	side, ok := p.Side()
	if !ok || side != gs.SideToMove {
		return nil
	}
	var moves []Move
	for _, d := range directions {
		t := from
		for {
			next, ok := step(t, d, gs.Board.Len())
			if !ok || gs.Board.Get(next) != Empty {
				break
			}
			t = next
			// A vacant restricted tile may be passed through but only the
			// king comes to rest on it.
			if gs.Variant.CanOccupy(p, t) {
				moves = append(moves, Move{From: from, To: t})
			}
		}
	}
	return moves
}

// hasAnyMove is LegalMoves with an early exit, used for stalemate checks.
func (gs *GameState) hasAnyMove(side Side) bool {
	for _, from := range gs.Board.Occupied(side) {
		p := gs.Board.Get(from)
		for _, d := range directions {
			t := from
			for {
				next, ok := step(t, d, gs.Board.Len())
				if !ok || gs.Board.Get(next) != Empty {
					break
				}
				t = next
				if gs.Variant.CanOccupy(p, t) {
					return true
				}
			}
		}
	}
	return false
}

// isLegal re-validates a move against the current position without
// enumerating the full legal set.
func (gs *GameState) isLegal(m Move) bool {
	if gs.Status != Ongoing || m.From == m.To {
		return false
	}
	if m.From.Row != m.To.Row && m.From.Col != m.To.Col {
		return false
	}
	// Both endpoints are range-checked per coordinate before any board
	// read: a column overflow can land the flat index on a different row's
	// tile, so an index-bound check alone is not enough.
	last := gs.Board.Len()
	if m.From.Row >= last || m.From.Col >= last || m.To.Row >= last || m.To.Col >= last {
		return false
	}
	p := gs.Board.Get(m.From)
	side, ok := p.Side()
	if !ok || side != gs.SideToMove {
		return false
	}
	if !gs.Variant.CanOccupy(p, m.To) {
		return false
	}
	d := direction{dr: sign(int(m.To.Row) - int(m.From.Row)), dc: sign(int(m.To.Col) - int(m.From.Col))}
	t := m.From
	for t != m.To {
		next, ok := step(t, d, gs.Board.Len())
		if !ok || gs.Board.Get(next) != Empty {
			return false
		}
		t = next
	}
	return true
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
