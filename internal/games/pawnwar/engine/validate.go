package engine

// Validate checks a pawn move for color from -> to and returns its descriptor.
// It never mutates b, ts or used. A nil used set means no pawn has captured
// en passant yet.
func Validate(b *Board, ts TurnState, used EnPassantUsage, color Color, from, to Square) (Move, bool) {
	if !from.InBounds() || !to.InBounds() {
		return Move{}, false
	}

	piece := b.At(from)
	if piece.Kind != Pawn || piece.Color != color {
		return Move{}, false
	}

	dir := Forward(color)
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col
	if colDiff < 0 {
		colDiff = -colDiff
	}
	target := b.At(to)

	switch {
	case rowDiff == dir && colDiff == 0 && target.Empty():
		return Move{From: from, To: to}, true

	case rowDiff == 2*dir && colDiff == 0 && from.Row == HomeRank(color) &&
		b.At(Sq(from.Row+dir, from.Col)).Empty() && target.Empty():
		return Move{From: from, To: to}, true

	case rowDiff == dir && colDiff == 1 && !target.Empty() && target.Color == color.Opponent():
		return Move{From: from, To: to}, true

	case rowDiff == dir && colDiff == 1 && target.Empty():
		return validateEnPassant(b, ts, used, color, from, to)
	}

	return Move{}, false
}

// enPassantRank is the row a pawn must stand on to capture en passant:
// the rank an opposing double step lands on.
func enPassantRank(c Color) int {
	return HomeRank(c.Opponent()) + 2*Forward(c.Opponent())
}

func validateEnPassant(b *Board, ts TurnState, used EnPassantUsage, color Color, from, to Square) (Move, bool) {
	if from.Row != enPassantRank(color) || ts.LastMove == nil {
		return Move{}, false
	}
	if used.Has(from) {
		return Move{}, false
	}

	last := ts.LastMove
	victim := Sq(from.Row, to.Col)
	if last.Color != color.Opponent() || !last.DoubleStep || last.To != victim {
		return Move{}, false
	}
	if p := b.At(victim); p.Kind != Pawn || p.Color != color.Opponent() {
		return Move{}, false
	}

	return Move{From: from, To: to, Kind: EnPassant, Captured: victim}, true
}
