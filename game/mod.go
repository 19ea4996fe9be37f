package game

// Side identifies one of the two armies.
type Side int

const (
	Attacker Side = iota
	Defender
)

func (s Side) Other() Side {
	if s == Attacker {
		return Defender
	}
	return Attacker
}

func (s Side) String() string {
	if s == Attacker {
		return "attacker"
	}
	return "defender"
}

// Piece is the occupant of a single tile.
type Piece uint8

const (
	Empty Piece = iota
	AttackerSoldier
	DefenderSoldier
	King
)

// Side returns the army a piece belongs to. The second return value is
// false for Empty.
func (p Piece) Side() (Side, bool) {
	switch p {
	case AttackerSoldier:
		return Attacker, true
	case DefenderSoldier, King:
		return Defender, true
	default:
		return 0, false
	}
}

func (p Piece) String() string {
	switch p {
	case AttackerSoldier:
		return "A"
	case DefenderSoldier:
		return "D"
	case King:
		return "K"
	default:
		return "."
	}
}

// Status is the lifecycle of a game. Every status other than Ongoing is
// terminal: no Apply call transitions out of it.
type Status int

const (
	Ongoing Status = iota
	AttackerWin
	DefenderWin
	Draw
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case AttackerWin:
		return "attacker win"
	case DefenderWin:
		return "defender win"
	default:
		return "draw"
	}
}

// PlacedPiece is a piece together with the tile it stood on.
type PlacedPiece struct {
	Tile  Tile
	Piece Piece
}

// CaptureEvent lists the pieces removed by a single Apply call. It is
// reported once per move and not stored on the state.
type CaptureEvent []PlacedPiece

// Evaluate scores a position from the attacker's perspective: positive
// favors the attacker, negative the defender.
type Evaluate func(*GameState) int
