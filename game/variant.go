package game

import "fmt"

// EscapeRule selects the tiles on which the king wins for the defender.
type EscapeRule int

const (
	// CornerEscape: the king must reach one of the four corner tiles.
	CornerEscape EscapeRule = iota
	// EdgeEscape: any tile on the board's perimeter suffices.
	EdgeEscape
)

// KingCaptureRule selects how the king is taken.
type KingCaptureRule int

const (
	// KingCaptureFourSides: the king falls only when all four orthogonal
	// neighbors are hostile. Board edges are never hostile, so an edge
	// king cannot be taken this way.
	KingCaptureFourSides KingCaptureRule = iota
	// KingCaptureTwoSides: the king is flanked like an ordinary soldier.
	KingCaptureTwoSides
)

// Variant is the immutable configuration of one tafl rule set. Rule
// differences between historical variants are expressed as data consulted
// by the shared algorithms, not as distinct types.
type Variant struct {
	Name     string
	BoardLen uint8
	// Layout holds BoardLen rows of BoardLen runes: 'A' attacker soldier,
	// 'D' defender soldier, 'K' king, '.' empty.
	Layout []string

	Escape      EscapeRule
	KingCapture KingCaptureRule
	// ThroneHostileToKing makes the empty throne count as a hostile side
	// when closing in on the king (capture against the throne).
	ThroneHostileToKing bool
	// ArmedKing lets the king act as the flanking partner in custodian
	// captures of attacker soldiers.
	ArmedKing bool
	// ShieldWall enables the edge-row multi-capture.
	ShieldWall bool
	// StalemateLoss: a side with no legal moves loses; otherwise the game
	// is drawn.
	StalemateLoss bool
	// RepetitionLimit is the number of times a position (with the same
	// side to move) may occur before the game is drawn. Zero disables the
	// check.
	RepetitionLimit int
	// MoveLimit draws the game after this many applied moves. Zero
	// disables the check.
	MoveLimit int
}

func (v *Variant) fail(format string, args ...any) error {
	return &ConfigurationError{Variant: v.Name, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the variant for internal consistency. Construction
// helpers call this so that a bad configuration can never reach play.
func (v *Variant) Validate() error {
	if v.BoardLen < 5 || v.BoardLen%2 == 0 {
		return v.fail("board length must be odd and at least 5, got %d", v.BoardLen)
	}
	if len(v.Layout) != int(v.BoardLen) {
		return v.fail("layout has %d rows, want %d", len(v.Layout), v.BoardLen)
	}
	kings := 0
	attackers := 0
	defenders := 0
	for r, row := range v.Layout {
		if len(row) != int(v.BoardLen) {
			return v.fail("layout row %d has %d tiles, want %d", r, len(row), v.BoardLen)
		}
		for c, ch := range row {
			t := Tile{Row: uint8(r), Col: uint8(c)}
			switch ch {
			case '.':
			case 'A':
				attackers++
			case 'D':
				defenders++
				if v.IsCorner(t) || t == v.Throne() {
					return v.fail("soldier placed on restricted tile %s", t)
				}
			case 'K':
				kings++
			default:
				return v.fail("unknown layout rune %q at %s", ch, t)
			}
			if ch == 'A' && (v.IsCorner(t) || t == v.Throne()) {
				return v.fail("soldier placed on restricted tile %s", t)
			}
		}
	}
	if kings != 1 {
		return v.fail("layout has %d kings, want exactly 1", kings)
	}
	if attackers == 0 || defenders == 0 {
		return v.fail("both sides need at least one soldier")
	}
	if v.RepetitionLimit < 0 || v.MoveLimit < 0 {
		return v.fail("repetition and move limits must not be negative")
	}
	return nil
}

// Throne returns the center tile.
func (v *Variant) Throne() Tile {
	mid := v.BoardLen / 2
	return Tile{Row: mid, Col: mid}
}

// IsCorner reports whether a tile is one of the four board corners.
func (v *Variant) IsCorner(t Tile) bool {
	last := v.BoardLen - 1
	return (t.Row == 0 || t.Row == last) && (t.Col == 0 || t.Col == last)
}

// IsEdge reports whether a tile lies on the board's perimeter.
func (v *Variant) IsEdge(t Tile) bool {
	last := v.BoardLen - 1
	return t.Row == 0 || t.Row == last || t.Col == 0 || t.Col == last
}

// IsEscape reports whether the king wins by standing on t.
func (v *Variant) IsEscape(t Tile) bool {
	if v.Escape == EdgeEscape {
		return v.IsEdge(t)
	}
	return v.IsCorner(t)
}

// CanOccupy reports whether a piece may come to rest on t. Ordinary
// soldiers may pass through a vacant throne but never stop on it, and
// never enter a corner. The king may stand anywhere.
func (v *Variant) CanOccupy(p Piece, t Tile) bool {
	if p == King {
		return true
	}
	return !v.IsCorner(t) && t != v.Throne()
}

// hostileTile reports whether an unoccupied special tile acts as a
// capturing partner against p. Corners are hostile to every piece; the
// vacant throne is hostile to soldiers always and to the king only when
// the variant says so.
func (v *Variant) hostileTile(p Piece, t Tile, b Board) bool {
	if v.IsCorner(t) {
		return true
	}
	if t != v.Throne() || b.Get(t) != Empty {
		return false
	}
	if p == King {
		return v.ThroneHostileToKing
	}
	return true
}

// hostileTo reports whether tile t counts as hostile toward p: either an
// enemy piece able to take part in captures, or a hostile special tile.
func (v *Variant) hostileTo(p Piece, t Tile, b Board) bool {
	occupant := b.Get(t)
	if occupant == Empty {
		return v.hostileTile(p, t, b)
	}
	ps, _ := p.Side()
	os, _ := occupant.Side()
	if ps == os {
		return false
	}
	if occupant == King && !v.ArmedKing {
		return false
	}
	return true
}

// initialBoard builds the starting position from the layout. The layout is
// assumed validated.
func (v *Variant) initialBoard() Board {
	b := newBoard(v.BoardLen)
	for r, row := range v.Layout {
		for c, ch := range row {
			t := Tile{Row: uint8(r), Col: uint8(c)}
			switch ch {
			case 'A':
				b.Set(t, AttackerSoldier)
			case 'D':
				b.Set(t, DefenderSoldier)
			case 'K':
				b.Set(t, King)
			}
		}
	}
	return b
}
