package game

import "fmt"

// GameState is the full dynamic state of one game: the board, the side to
// play, the rule set in force, and the bookkeeping needed for draw
// detection. States are value-like: Apply returns a new state and never
// mutates the receiver, so concurrent read-only use needs no locking.
type GameState struct {
	Board      Board
	SideToMove Side
	Variant    *Variant
	MoveCount  int
	Status     Status
	// History holds every applied move in order.
	History []Move
	// positions counts how often each position (keyed by zobrist hash,
	// side to move included) has occurred, for repetition detection.
	positions map[uint64]int
}

// NewGameState sets up the starting position for a variant. The attacker
// moves first. An inconsistent variant yields a ConfigurationError here,
// never during play.
func NewGameState(v *Variant) (*GameState, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	gs := &GameState{
		Board:      v.initialBoard(),
		SideToMove: Attacker,
		Variant:    v,
		positions:  make(map[uint64]int),
	}
	gs.positions[gs.Hash()] = 1
	return gs, nil
}

// StateFromLayout builds a mid-game position from a board diagram using
// the receiver's rules. The layout is validated like an initial placement.
func (v *Variant) StateFromLayout(layout []string, toMove Side) (*GameState, error) {
	custom := *v
	custom.Layout = layout
	if err := custom.Validate(); err != nil {
		return nil, err
	}
	gs := &GameState{
		Board:      custom.initialBoard(),
		SideToMove: toMove,
		Variant:    &custom,
		positions:  make(map[uint64]int),
	}
	gs.positions[gs.Hash()] = 1
	return gs, nil
}

// Copy returns a deep copy sharing nothing mutable with the receiver.
func (gs *GameState) Copy() *GameState {
	history := make([]Move, len(gs.History))
	copy(history, gs.History)

	positions := make(map[uint64]int, len(gs.positions))
	for k, v := range gs.positions {
		positions[k] = v
	}

	return &GameState{
		Board:      gs.Board.Copy(),
		SideToMove: gs.SideToMove,
		Variant:    gs.Variant,
		MoveCount:  gs.MoveCount,
		Status:     gs.Status,
		History:    history,
		positions:  positions,
	}
}

// Apply plays a move and returns the resulting state plus the pieces it
// removed. The move is re-validated here regardless of where it came
// from; a move outside the legal set fails with ErrIllegalMove and a call
// on a terminal state fails with ErrGameOver. The receiver is unchanged.
func (gs *GameState) Apply(m Move) (*GameState, CaptureEvent, error) {
	if gs.Status != Ongoing {
		return nil, nil, fmt.Errorf("apply %s: %w", m, ErrGameOver)
	}
	if !gs.isLegal(m) {
		return nil, nil, fmt.Errorf("apply %s for %s: %w", m, gs.SideToMove, ErrIllegalMove)
	}

	ns := gs.Copy()
	p := ns.Board.Get(m.From)
	ns.Board.Set(m.From, Empty)
	ns.Board.Set(m.To, p)

	caps := ns.captures(m.To)
	for _, pp := range caps {
		ns.Board.Set(pp.Tile, Empty)
	}

	ns.MoveCount++
	ns.History = append(ns.History, m)

	// King capture is checked before escape.
	for _, pp := range caps {
		if pp.Piece == King {
			ns.Status = AttackerWin
			return ns, caps, nil
		}
	}
	if p == King && ns.Variant.IsEscape(m.To) {
		ns.Status = DefenderWin
		return ns, caps, nil
	}

	ns.SideToMove = ns.SideToMove.Other()

	if !ns.hasAnyMove(ns.SideToMove) {
		switch {
		case !ns.Variant.StalemateLoss:
			ns.Status = Draw
		case ns.SideToMove == Attacker:
			ns.Status = DefenderWin
		default:
			ns.Status = AttackerWin
		}
		return ns, caps, nil
	}

	h := ns.Hash()
	ns.positions[h]++
	if limit := ns.Variant.RepetitionLimit; limit > 0 && ns.positions[h] >= limit {
		ns.Status = Draw
		return ns, caps, nil
	}
	if limit := ns.Variant.MoveLimit; limit > 0 && ns.MoveCount >= limit {
		ns.Status = Draw
	}
	return ns, caps, nil
}
