package knightdefense

import "github.com/vovakirdan/pawn-arcade/internal/core"

// Size is the board dimension.
const Size = 8

const (
	spawnRow    = 0
	fortressRow = Size - 1
)

// Pos is a board square, row 0 at the top.
type Pos struct {
	Row, Col int
}

// InBounds reports whether p lies on the board.
func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// UnitKind distinguishes attacker types.
type UnitKind uint8

const (
	KindPawn    UnitKind = iota + 1 // steps every pawn tick, 1 damage
	KindVeteran                     // slower, hits harder
)

func (k UnitKind) String() string {
	switch k {
	case KindPawn:
		return "pawn"
	case KindVeteran:
		return "veteran"
	default:
		return "unknown"
	}
}

// Unit is an attacker on the board.
type Unit struct {
	Kind   UnitKind
	charge int // pawn ticks since the last step
}

var knightJumps = [8]Pos{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// isKnightMove reports whether from -> to is an L-shaped jump.
func isKnightMove(from, to Pos) bool {
	dr, dc := core.Abs(to.Row-from.Row), core.Abs(to.Col-from.Col)
	return (dr == 2 && dc == 1) || (dr == 1 && dc == 2)
}

// knightTargets lists the on-board squares the knight can jump to.
func knightTargets(from Pos) []Pos {
	out := make([]Pos, 0, len(knightJumps))
	for _, d := range knightJumps {
		p := Pos{from.Row + d.Row, from.Col + d.Col}
		if p.InBounds() {
			out = append(out, p)
		}
	}
	return out
}

