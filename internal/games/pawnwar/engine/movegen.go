package engine

import (
	"iter"
	"slices"
)

// candidateOffsets lists every (row, col) delta a pawn could possibly move by,
// in row-major order for each color.
var candidateOffsets = map[Color][][2]int{
	White: {{-2, 0}, {-1, -1}, {-1, 0}, {-1, 1}},
	Black: {{1, -1}, {1, 0}, {1, 1}, {2, 0}},
}

// Moves enumerates all legal moves for color. Each origin is visited in
// row-major order and its destinations likewise, so the sequence matches a
// full 64x64 scan filtered through Validate. The sequence is lazy and may be
// ranged over more than once.
func Moves(b *Board, ts TurnState, used EnPassantUsage, color Color) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for r := range Size {
			for c := range Size {
				if p := b[r][c]; p.Kind != Pawn || p.Color != color {
					continue
				}
				from := Sq(r, c)
				for _, d := range candidateOffsets[color] {
					m, ok := Validate(b, ts, used, color, from, Sq(r+d[0], c+d[1]))
					if !ok {
						continue
					}
					if !yield(m) {
						return
					}
				}
			}
		}
	}
}

// CollectMoves returns all legal moves for color as a slice.
func CollectMoves(b *Board, ts TurnState, used EnPassantUsage, color Color) []Move {
	return slices.Collect(Moves(b, ts, used, color))
}

// TargetsFrom returns the legal destinations of the piece on from.
func TargetsFrom(b *Board, ts TurnState, used EnPassantUsage, color Color, from Square) []Move {
	var out []Move
	for _, d := range candidateOffsets[color] {
		if m, ok := Validate(b, ts, used, color, from, Sq(from.Row+d[0], from.Col+d[1])); ok {
			out = append(out, m)
		}
	}
	return out
}
