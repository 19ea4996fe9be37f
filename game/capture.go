package game

// captures computes every piece removed by the move that just landed on
// to. All checks run against the post-move, pre-removal board so that
// simultaneous captures cannot use an already-removed piece as a flanking
// partner.
func (gs *GameState) captures(to Tile) CaptureEvent {
	mover := gs.Board.Get(to)
	moverSide, _ := mover.Side()

	taken := make(map[Tile]bool)
	var event CaptureEvent
	record := func(t Tile, p Piece) {
		if !taken[t] {
			taken[t] = true
			event = append(event, PlacedPiece{Tile: t, Piece: p})
		}
	}

	// Custodian captures against the mover's four neighbors.
	for _, d := range directions {
		n, ok := step(to, d, gs.Board.Len())
		if !ok {
			continue
		}
		victim := gs.Board.Get(n)
		vside, occupied := victim.Side()
		if !occupied || vside == moverSide {
			continue
		}
		if victim == King && gs.Variant.KingCapture == KingCaptureFourSides {
			continue // handled by the surround check below
		}
		opposite, ok := step(n, d, gs.Board.Len())
		if !ok {
			continue
		}
		if gs.Variant.hostileTo(victim, opposite, gs.Board) {
			record(n, victim)
		}
	}

	if gs.Variant.ShieldWall {
		for _, pp := range gs.shieldWallCaptures(to, moverSide) {
			record(pp.Tile, pp.Piece)
		}
	}

	if gs.Variant.KingCapture == KingCaptureFourSides && moverSide == Attacker {
		if kt, surrounded := gs.kingSurrounded(to); surrounded {
			record(kt, King)
		}
	}

	return event
}

// kingSurrounded reports whether the attacker move landing on to completed
// a capture of the king: the king adjacent to the landed piece with all
// four orthogonal neighbors hostile. Tiles beyond the board edge are not
// hostile.
func (gs *GameState) kingSurrounded(to Tile) (Tile, bool) {
	kt, ok := gs.Board.King()
	if !ok {
		return Tile{}, false
	}
	adjacent := false
	for _, d := range directions {
		if n, ok := step(to, d, gs.Board.Len()); ok && n == kt {
			adjacent = true
			break
		}
	}
	if !adjacent {
		return Tile{}, false
	}
	for _, d := range directions {
		n, ok := step(kt, d, gs.Board.Len())
		if !ok || !gs.Variant.hostileTo(King, n, gs.Board) {
			return Tile{}, false
		}
	}
	return kt, true
}

// edge describes one board edge for the shield wall scan: the tile at
// index i along the edge and the inward direction off it.
type edge struct {
	at     func(i uint8) Tile
	inward direction
}

// shieldWallCaptures finds rows of two or more enemy pieces lined against
// a board edge, each blocked from the inside by a mover-side piece and
// bracketed along the edge by mover-side pieces or hostile corners. The
// whole row is taken at once; a king caught in the wall survives. The
// landed piece must take part, either as a bracket or as part of the
// inward blocking line.
func (gs *GameState) shieldWallCaptures(to Tile, moverSide Side) []PlacedPiece {
	last := gs.Board.Len() - 1
	edges := [4]edge{
		{at: func(i uint8) Tile { return Tile{Row: 0, Col: i} }, inward: direction{1, 0}},
		{at: func(i uint8) Tile { return Tile{Row: last, Col: i} }, inward: direction{-1, 0}},
		{at: func(i uint8) Tile { return Tile{Row: i, Col: 0} }, inward: direction{0, 1}},
		{at: func(i uint8) Tile { return Tile{Row: i, Col: last} }, inward: direction{0, -1}},
	}

	var captured []PlacedPiece
	for _, e := range edges {
		i := uint8(0)
		for i <= last {
			start := i
			for i <= last && gs.inWall(e, i, moverSide) {
				i++
			}
			if i == start {
				i++
				continue
			}
			// Run of wall victims is [start, i).
			if int(i)-int(start) >= 2 && gs.wallBracketed(e, start, i-1, moverSide) && gs.wallIncludes(e, start, i-1, to) {
				for j := start; j < i; j++ {
					t := e.at(j)
					if p := gs.Board.Get(t); p != King {
						captured = append(captured, PlacedPiece{Tile: t, Piece: p})
					}
				}
			}
		}
	}
	return captured
}

// inWall reports whether the edge tile at index i holds an enemy piece
// blocked from the inside by a mover-side piece.
func (gs *GameState) inWall(e edge, i uint8, moverSide Side) bool {
	t := e.at(i)
	side, occupied := gs.Board.Get(t).Side()
	if !occupied || side == moverSide {
		return false
	}
	in, ok := step(t, e.inward, gs.Board.Len())
	if !ok {
		return false
	}
	inSide, inOccupied := gs.Board.Get(in).Side()
	return inOccupied && inSide == moverSide
}

// wallBracketed reports whether the run [lo, hi] is closed at both ends by
// a mover-side piece or a hostile corner.
func (gs *GameState) wallBracketed(e edge, lo, hi uint8, moverSide Side) bool {
	closed := func(t Tile) bool {
		if side, occupied := gs.Board.Get(t).Side(); occupied {
			return side == moverSide
		}
		return gs.Variant.IsCorner(t)
	}
	if lo == 0 || hi == gs.Board.Len()-1 {
		return false
	}
	before := e.at(lo - 1)
	after := e.at(hi + 1)
	return closed(before) && closed(after)
}

// wallIncludes reports whether the landed piece participates in the wall:
// it is one of the brackets or one of the inward blockers.
func (gs *GameState) wallIncludes(e edge, lo, hi uint8, to Tile) bool {
	if e.at(lo-1) == to || e.at(hi+1) == to {
		return true
	}
	for j := lo; j <= hi; j++ {
		if in, ok := step(e.at(j), e.inward, gs.Board.Len()); ok && in == to {
			return true
		}
	}
	return false
}
