package engine

import "fmt"

// MoveKind tags the variant of a validated move.
type MoveKind uint8

const (
	Normal MoveKind = iota
	EnPassant
)

// String returns a human-readable name for the move kind.
func (k MoveKind) String() string {
	if k == EnPassant {
		return "en passant"
	}
	return "normal"
}

// Move is a validated move descriptor.
// Captured is only meaningful for EnPassant: it is the square of the pawn
// removed, which differs from To.
type Move struct {
	From     Square
	To       Square
	Kind     MoveKind
	Captured Square
}

// String renders the move as "from->to".
func (m Move) String() string {
	if m.Kind == EnPassant {
		return fmt.Sprintf("%s->%s e.p.", m.From, m.To)
	}
	return fmt.Sprintf("%s->%s", m.From, m.To)
}

// IsCapture reports whether the move removes an opposing piece on b.
// b must be the position the move was generated on.
func (m Move) IsCapture(b *Board) bool {
	return m.Kind == EnPassant || !b.At(m.To).Empty()
}

// Advance returns how many rows the move gains for color c.
func (m Move) Advance(c Color) int {
	return (m.To.Row - m.From.Row) * Forward(c)
}

// MoveRecord remembers the last executed move. Records are never mutated
// after creation, so they may be shared between snapshots.
type MoveRecord struct {
	Color      Color
	From       Square
	To         Square
	DoubleStep bool
}

// TurnState is whose turn it is plus the record needed for en passant.
type TurnState struct {
	Current  Color
	LastMove *MoveRecord
}

// EnPassantUsage is the set of pawn identities that have already captured
// en passant. A pawn's identity is the square it captured from.
type EnPassantUsage map[Square]struct{}

// Has reports whether the identity already used its en passant capture.
func (u EnPassantUsage) Has(id Square) bool {
	_, ok := u[id]
	return ok
}

// Add marks the identity as used.
func (u EnPassantUsage) Add(id Square) {
	u[id] = struct{}{}
}

// Clone returns an independent copy.
func (u EnPassantUsage) Clone() EnPassantUsage {
	out := make(EnPassantUsage, len(u))
	for k := range u {
		out[k] = struct{}{}
	}
	return out
}
