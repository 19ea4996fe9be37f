package game

// Terminal scores used by evaluation functions. The searcher treats
// anything at or beyond these as a decided game.
const (
	AttackerWinScore = 1 << 30
	DefenderWinScore = -(1 << 30)
)

// EvaluateMaterial scores a position by weighted piece counts only.
// Attackers start with more soldiers, so defender soldiers weigh double.
func EvaluateMaterial(gs *GameState) int {
	switch gs.Status {
	case AttackerWin:
		return AttackerWinScore
	case DefenderWin:
		return DefenderWinScore
	case Draw:
		return 0
	}
	att := gs.Board.Count(Attacker)
	def := gs.Board.Count(Defender)
	return att*10 - (def-1)*20 + att + def
}

// EvaluatePosition is the default heuristic: weighted material, the
// king's distance from its nearest escape, hostile pressure next to the
// king, and mobility. Positive favors the attacker.
func EvaluatePosition(gs *GameState) int {
	switch gs.Status {
	case AttackerWin:
		return AttackerWinScore
	case DefenderWin:
		return DefenderWinScore
	case Draw:
		return 0
	}

	score := EvaluateMaterial(gs)

	kt, ok := gs.Board.King()
	if !ok {
		return AttackerWinScore
	}

	// A king far from the escape tiles is good for the attacker. The
	// per-axis edge distances sum to the Manhattan distance to the
	// nearest corner.
	last := int(gs.Board.Len()) - 1
	rowDist := min(int(kt.Row), last-int(kt.Row))
	colDist := min(int(kt.Col), last-int(kt.Col))
	score += 5 * (rowDist + colDist)

	// Hostile pieces or tiles crowding the king.
	for _, d := range directions {
		if n, inBounds := step(kt, d, gs.Board.Len()); inBounds && gs.Variant.hostileTo(King, n, gs.Board) {
			score += 10
		}
	}

	score += mobility(gs, Attacker) - mobility(gs, Defender)

	return score
}

// mobility counts the legal moves available to a side without building
// the move list.
func mobility(gs *GameState, side Side) int {
	count := 0
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
					count++
				}
			}
		}
	}
	return count
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
