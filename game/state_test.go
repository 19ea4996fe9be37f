package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustState(t *testing.T, v *Variant, layout []string, toMove Side) *GameState {
	t.Helper()
	gs, err := v.StateFromLayout(layout, toMove)
	require.NoError(t, err)
	return gs
}

func TestApplyCaptures(t *testing.T) {
	t.Run("custodian capture of a flanked soldier", func(t *testing.T) {
		gs := mustState(t, testVariant(), []string{
			".......",
			"A.DA...",
			".......",
			"...K...",
			".......",
			".....D.",
			".......",
		}, Attacker)

		next, caps, err := gs.Apply(Move{From: Tile{Row: 1, Col: 0}, To: Tile{Row: 1, Col: 1}})

		require.NoError(t, err)
		require.Equal(t, CaptureEvent{{Tile: Tile{Row: 1, Col: 2}, Piece: DefenderSoldier}}, caps,
			"The defender between the landed piece and its partner should fall")
		require.Equal(t, Empty, next.Board.Get(Tile{Row: 1, Col: 2}))
		require.Equal(t, 2, next.Board.Count(Attacker), "The capturing side should be untouched")
		require.Equal(t, 2, next.Board.Count(Defender))
		require.Equal(t, Ongoing, next.Status)
		require.Equal(t, DefenderSoldier, gs.Board.Get(Tile{Row: 1, Col: 2}),
			"Apply should not mutate the original state")
	})

	t.Run("one move takes two flanked soldiers at once", func(t *testing.T) {
		gs := mustState(t, testVariant(), []string{
			".A.....",
			".D.....",
			".....A.",
			".D.K...",
			".A.....",
			".......",
			".......",
		}, Attacker)
		defendersBefore := gs.Board.Count(Defender)

		next, caps, err := gs.Apply(Move{From: Tile{Row: 2, Col: 5}, To: Tile{Row: 2, Col: 1}})

		require.NoError(t, err)
		require.Len(t, caps, 2, "Both flanked defenders should fall on the same move")
		require.Equal(t, defendersBefore-2, next.Board.Count(Defender))
		require.Equal(t, Empty, next.Board.Get(Tile{Row: 1, Col: 1}))
		require.Equal(t, Empty, next.Board.Get(Tile{Row: 3, Col: 1}))
	})

	t.Run("vacant throne acts as the far capturing partner", func(t *testing.T) {
		gs := mustState(t, testVariant(), []string{
			".......",
			".......",
			"...K...",
			"A.D....",
			".......",
			".......",
			".......",
		}, Attacker)

		next, caps, err := gs.Apply(Move{From: Tile{Row: 3, Col: 0}, To: Tile{Row: 3, Col: 1}})

		require.NoError(t, err)
		require.Equal(t, CaptureEvent{{Tile: Tile{Row: 3, Col: 2}, Piece: DefenderSoldier}}, caps,
			"The defender is flanked between the landed piece and the vacant throne")
		require.Equal(t, Empty, next.Board.Get(Tile{Row: 3, Col: 2}))
	})
}

func TestApplyKingEscape(t *testing.T) {
	gs := mustState(t, testVariant(), []string{
		"...K...",
		".......",
		".A...A.",
		".......",
		".D.....",
		".......",
		"...A...",
	}, Defender)

	next, caps, err := gs.Apply(Move{From: Tile{Row: 0, Col: 3}, To: Tile{Row: 0, Col: 0}})

	require.NoError(t, err)
	require.Empty(t, caps)
	require.Equal(t, DefenderWin, next.Status, "The king reaching a corner wins for the defender")

	_, _, err = next.Apply(Move{From: Tile{Row: 2, Col: 1}, To: Tile{Row: 2, Col: 2}})
	require.ErrorIs(t, err, ErrGameOver, "Terminal states should reject further moves")
}

func TestApplyKingCapture(t *testing.T) {
	t.Run("two-sided rule flanks the king like a soldier", func(t *testing.T) {
		v := testVariant() // KingCaptureTwoSides
		gs := mustState(t, v, []string{
			".......",
			".AK..A.",
			".......",
			".......",
			".D.....",
			".......",
			".......",
		}, Attacker)

		next, caps, err := gs.Apply(Move{From: Tile{Row: 1, Col: 5}, To: Tile{Row: 1, Col: 3}})

		require.NoError(t, err)
		require.Contains(t, caps, PlacedPiece{Tile: Tile{Row: 1, Col: 2}, Piece: King})
		require.Equal(t, AttackerWin, next.Status, "Losing the king loses the game")
	})

	t.Run("four-sided rule needs the full surround", func(t *testing.T) {
		v := testVariant()
		v.KingCapture = KingCaptureFourSides
		gs := mustState(t, v, []string{
			".......",
			"..A....",
			".AK..A.",
			"..A....",
			".D.....",
			".......",
			".......",
		}, Attacker)

		next, caps, err := gs.Apply(Move{From: Tile{Row: 2, Col: 5}, To: Tile{Row: 2, Col: 3}})

		require.NoError(t, err)
		require.Contains(t, caps, PlacedPiece{Tile: Tile{Row: 2, Col: 2}, Piece: King})
		require.Equal(t, AttackerWin, next.Status)
	})

	t.Run("two-sided rule flanks the king against the vacant throne", func(t *testing.T) {
		v := testVariant() // ThroneHostileToKing is set
		gs := mustState(t, v, []string{
			"...A...",
			".......",
			"...K...",
			".......",
			".D.....",
			".......",
			".......",
		}, Attacker)

		next, caps, err := gs.Apply(Move{From: Tile{Row: 0, Col: 3}, To: Tile{Row: 1, Col: 3}})

		require.NoError(t, err)
		require.Contains(t, caps, PlacedPiece{Tile: Tile{Row: 2, Col: 3}, Piece: King},
			"The vacant throne should close the flank on the king")
		require.Equal(t, AttackerWin, next.Status)
	})

	t.Run("four-sided rule counts the vacant throne as the fourth side", func(t *testing.T) {
		v := testVariant()
		v.KingCapture = KingCaptureFourSides
		gs := mustState(t, v, []string{
			"....A..",
			"...A...",
			"..AK...",
			".......",
			".D.....",
			".......",
			".......",
		}, Attacker)

		// The king stands just north of the empty throne; the landing
		// attacker closes the last open side.
		next, caps, err := gs.Apply(Move{From: Tile{Row: 0, Col: 4}, To: Tile{Row: 2, Col: 4}})

		require.NoError(t, err)
		require.Contains(t, caps, PlacedPiece{Tile: Tile{Row: 2, Col: 3}, Piece: King})
		require.Equal(t, AttackerWin, next.Status)
	})

	t.Run("a friendly throne does not help capture the king", func(t *testing.T) {
		v := testVariant()
		v.KingCapture = KingCaptureFourSides
		v.ThroneHostileToKing = false
		gs := mustState(t, v, []string{
			"....A..",
			"...A...",
			"..AK...",
			".......",
			".D.....",
			".......",
			".......",
		}, Attacker)

		next, caps, err := gs.Apply(Move{From: Tile{Row: 0, Col: 4}, To: Tile{Row: 2, Col: 4}})

		require.NoError(t, err)
		require.Empty(t, caps, "Three attackers and a non-hostile throne are not a surround")
		require.Equal(t, Ongoing, next.Status)
	})

	t.Run("four-sided rule ignores a plain flank", func(t *testing.T) {
		v := testVariant()
		v.KingCapture = KingCaptureFourSides
		gs := mustState(t, v, []string{
			".......",
			".......",
			".AK..A.",
			".......",
			".D.....",
			".......",
			".......",
		}, Attacker)

		next, caps, err := gs.Apply(Move{From: Tile{Row: 2, Col: 5}, To: Tile{Row: 2, Col: 3}})

		require.NoError(t, err)
		require.Empty(t, caps, "Two hostile sides are not enough under the four-sided rule")
		require.Equal(t, Ongoing, next.Status)
	})
}

func TestApplyShieldWall(t *testing.T) {
	t.Run("bracketed edge row falls at once", func(t *testing.T) {
		v := testVariant()
		v.ShieldWall = true
		gs := mustState(t, v, []string{
			".ADD...",
			"..AA...",
			".......",
			"....A..",
			".......",
			".....K.",
			".......",
		}, Attacker)

		next, caps, err := gs.Apply(Move{From: Tile{Row: 3, Col: 4}, To: Tile{Row: 0, Col: 4}})

		require.NoError(t, err)
		require.Len(t, caps, 2, "The whole wall should fall together")
		require.Equal(t, Empty, next.Board.Get(Tile{Row: 0, Col: 2}))
		require.Equal(t, Empty, next.Board.Get(Tile{Row: 0, Col: 3}))
		require.Equal(t, Ongoing, next.Status)
	})

	t.Run("a king caught in the wall survives", func(t *testing.T) {
		v := testVariant()
		v.ShieldWall = true
		gs := mustState(t, v, []string{
			".ADK...",
			"..AA...",
			".......",
			"....A..",
			".......",
			".......",
			".......",
		}, Attacker)

		next, caps, err := gs.Apply(Move{From: Tile{Row: 3, Col: 4}, To: Tile{Row: 0, Col: 4}})

		require.NoError(t, err)
		require.Equal(t, CaptureEvent{{Tile: Tile{Row: 0, Col: 2}, Piece: DefenderSoldier}}, caps)
		require.Equal(t, King, next.Board.Get(Tile{Row: 0, Col: 3}), "The king is never taken by a shield wall")
		require.Equal(t, Ongoing, next.Status)
	})

	t.Run("an open-ended row is not a wall", func(t *testing.T) {
		v := testVariant()
		v.ShieldWall = true
		gs := mustState(t, v, []string{
			"..DD...",
			"..AA...",
			".......",
			"....A..",
			".......",
			".....K.",
			".......",
		}, Attacker)

		next, caps, err := gs.Apply(Move{From: Tile{Row: 3, Col: 4}, To: Tile{Row: 0, Col: 4}})

		require.NoError(t, err)
		require.Empty(t, caps, "A wall must be closed at both ends")
		require.Equal(t, Ongoing, next.Status)
	})
}

func TestApplyEndings(t *testing.T) {
	stalemateLayout := []string{
		"..AKA..",
		"...A...",
		".......",
		"A......",
		".......",
		"...A...",
		"..ADA..",
	}

	t.Run("a moveless side loses when the variant says so", func(t *testing.T) {
		gs := mustState(t, testVariant(), stalemateLayout, Attacker)

		next, _, err := gs.Apply(Move{From: Tile{Row: 3, Col: 0}, To: Tile{Row: 3, Col: 1}})

		require.NoError(t, err)
		require.Equal(t, AttackerWin, next.Status, "The blocked defender should lose outright")
	})

	t.Run("a moveless side draws otherwise", func(t *testing.T) {
		v := testVariant()
		v.StalemateLoss = false
		gs := mustState(t, v, stalemateLayout, Attacker)

		next, _, err := gs.Apply(Move{From: Tile{Row: 3, Col: 0}, To: Tile{Row: 3, Col: 1}})

		require.NoError(t, err)
		require.Equal(t, Draw, next.Status)
	})

	t.Run("threefold repetition draws", func(t *testing.T) {
		gs := mustState(t, testVariant(), []string{
			".......",
			".A...D.",
			".......",
			"...K...",
			".......",
			".......",
			".......",
		}, Attacker)

		shuffle := []Move{
			{From: Tile{Row: 1, Col: 1}, To: Tile{Row: 1, Col: 2}},
			{From: Tile{Row: 1, Col: 5}, To: Tile{Row: 1, Col: 4}},
			{From: Tile{Row: 1, Col: 2}, To: Tile{Row: 1, Col: 1}},
			{From: Tile{Row: 1, Col: 4}, To: Tile{Row: 1, Col: 5}},
		}

		initialHash := gs.Hash()
		state := gs
		var err error
		for cycle := 0; cycle < 2; cycle++ {
			for _, m := range shuffle {
				require.Equal(t, Ongoing, state.Status)
				state, _, err = state.Apply(m)
				require.NoError(t, err)
			}
			require.Equal(t, initialHash, state.Hash(), "A full shuffle should restore the position")
		}
		require.Equal(t, Draw, state.Status, "The third occurrence of the position should draw")
	})

	t.Run("move limit draws", func(t *testing.T) {
		v := testVariant()
		v.RepetitionLimit = 0
		v.MoveLimit = 2
		gs := mustState(t, v, []string{
			".......",
			".A...D.",
			".......",
			"...K...",
			".......",
			".......",
			".......",
		}, Attacker)

		state, _, err := gs.Apply(Move{From: Tile{Row: 1, Col: 1}, To: Tile{Row: 1, Col: 2}})
		require.NoError(t, err)
		require.Equal(t, Ongoing, state.Status)

		state, _, err = state.Apply(Move{From: Tile{Row: 1, Col: 5}, To: Tile{Row: 1, Col: 4}})
		require.NoError(t, err)
		require.Equal(t, Draw, state.Status)
	})
}

func TestApplyRejections(t *testing.T) {
	gs := newBrandubh(t)

	cases := []struct {
		name string
		move Move
	}{
		{"diagonal move", Move{From: Tile{Row: 0, Col: 3}, To: Tile{Row: 1, Col: 4}}},
		{"moving the opponent's piece", Move{From: Tile{Row: 2, Col: 3}, To: Tile{Row: 2, Col: 1}}},
		{"moving an empty tile", Move{From: Tile{Row: 0, Col: 0}, To: Tile{Row: 0, Col: 1}}},
		{"jumping over a piece", Move{From: Tile{Row: 0, Col: 3}, To: Tile{Row: 2, Col: 3}}},
		{"zero-length move", Move{From: Tile{Row: 0, Col: 3}, To: Tile{Row: 0, Col: 3}}},
		{"soldier landing on a corner", Move{From: Tile{Row: 0, Col: 3}, To: Tile{Row: 0, Col: 0}}},
		{"origin row off the board", Move{From: Tile{Row: 7, Col: 0}, To: Tile{Row: 0, Col: 0}}},
		{"origin column wrapping onto another row", Move{From: Tile{Row: 0, Col: 8}, To: Tile{Row: 0, Col: 5}}},
		{"destination off the board", Move{From: Tile{Row: 0, Col: 3}, To: Tile{Row: 0, Col: 9}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, caps, err := gs.Apply(tc.move)
			require.ErrorIs(t, err, ErrIllegalMove)
			require.Nil(t, next)
			require.Nil(t, caps)
		})
	}
}

func TestApplyBookkeeping(t *testing.T) {
	gs := newBrandubh(t)
	move := gs.LegalMoves()[0]

	next, _, err := gs.Apply(move)
	require.NoError(t, err)

	require.Equal(t, 1, next.MoveCount)
	require.Equal(t, []Move{move}, next.History)
	require.Equal(t, Defender, next.SideToMove)
	require.NotEqual(t, gs.Hash(), next.Hash(), "Different positions should hash differently")

	require.Equal(t, 0, gs.MoveCount, "The original state must be unchanged")
	require.Empty(t, gs.History)
	require.Equal(t, Attacker, gs.SideToMove)

	t.Run("apply is deterministic", func(t *testing.T) {
		again, _, err := gs.Apply(move)
		require.NoError(t, err)
		require.True(t, next.Board.Equal(again.Board))
		require.Equal(t, next.Hash(), again.Hash())
	})

	t.Run("copies share nothing mutable", func(t *testing.T) {
		cp := gs.Copy()
		cp.Board.Set(Tile{Row: 0, Col: 0}, AttackerSoldier)
		require.Equal(t, Empty, gs.Board.Get(Tile{Row: 0, Col: 0}))
	})
}
