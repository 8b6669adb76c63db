// Package engine implements the Pawn War rules, AI and session controller.
// It is pure game logic: no terminal, no timers, no package-level state.
package engine

import "fmt"

// Size is the board dimension.
const Size = 8

// Color identifies a side.
type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// ParseColor parses "white" or "black".
func ParseColor(s string) (Color, error) {
	switch s {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
		return NoColor, fmt.Errorf("engine: unknown color %q", s)
	}
}

// Forward returns the row delta of one step for the color.
// White advances toward row 0, Black toward row 7.
func Forward(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRank is the row pawns of the color start on.
func HomeRank(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRank is the row a pawn of the color wins on.
func PromotionRank(c Color) int {
	if c == White {
		return 0
	}
	return Size - 1
}

// Kind is the type of a piece. The zero value marks an empty square.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Queen // decorative, marks a promoted pawn; never moves
)

// Piece is the content of a square. The zero Piece is an empty square.
type Piece struct {
	Kind  Kind
	Color Color
}

// Empty reports whether the square holds nothing.
func (p Piece) Empty() bool {
	return p.Kind == NoKind
}

// Square is a board coordinate.
type Square struct {
	Row, Col int
}

// Sq is shorthand for Square{row, col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// String renders the square as "row-col", the same form used for pawn identities.
func (s Square) String() string {
	return fmt.Sprintf("%d-%d", s.Row, s.Col)
}

// Board is the 8x8 grid. It is a value type: assignment copies every square.
type Board [Size][Size]Piece

// NewBoard returns the starting position: white pawns on row 6, black on row 1.
func NewBoard() Board {
	var b Board
	for c := range Size {
		b[HomeRank(White)][c] = Piece{Kind: Pawn, Color: White}
		b[HomeRank(Black)][c] = Piece{Kind: Pawn, Color: Black}
	}
	return b
}

// At returns the piece on s. Out-of-bounds squares read as empty.
func (b *Board) At(s Square) Piece {
	if !s.InBounds() {
		return Piece{}
	}
	return b[s.Row][s.Col]
}

// Set places p on s. Out-of-bounds writes are ignored.
func (b *Board) Set(s Square, p Piece) {
	if !s.InBounds() {
		return
	}
	b[s.Row][s.Col] = p
}

// Clear empties s.
func (b *Board) Clear(s Square) {
	b.Set(s, Piece{})
}

// Count returns the number of pawns of the color.
func (b *Board) Count(c Color) int {
	n := 0
	for r := range Size {
		for col := range Size {
			if p := b[r][col]; p.Kind == Pawn && p.Color == c {
				n++
			}
		}
	}
	return n
}

// Winner reports the side that has a pawn on its promotion rank.
// Columns are scanned left to right, white before black in each column.
func (b *Board) Winner() (Color, bool) {
	for c := range Size {
		if p := b[PromotionRank(White)][c]; p.Kind == Pawn && p.Color == White {
			return White, true
		}
		if p := b[PromotionRank(Black)][c]; p.Kind == Pawn && p.Color == Black {
			return Black, true
		}
	}
	return NoColor, false
}

// Promote converts a pawn of the color standing on its promotion rank into a Queen.
// Returns the square promoted and true, or false if there was none.
func (b *Board) Promote(c Color) (Square, bool) {
	row := PromotionRank(c)
	for col := range Size {
		if p := b[row][col]; p.Kind == Pawn && p.Color == c {
			b[row][col].Kind = Queen
			return Sq(row, col), true
		}
	}
	return Square{}, false
}
