package engine

// Outcome is the result of executing a move.
type Outcome struct {
	Captured Piece // zero Piece when nothing was taken
	Record   MoveRecord
}

// Execute applies a validated move to b. En passant also clears the captured
// pawn's square. Promotion is left to the caller.
func Execute(b *Board, m Move) Outcome {
	mover := b.At(m.From)

	var captured Piece
	if m.Kind == EnPassant {
		captured = b.At(m.Captured)
		b.Clear(m.Captured)
	} else {
		captured = b.At(m.To)
	}

	b.Set(m.To, mover)
	b.Clear(m.From)

	return Outcome{
		Captured: captured,
		Record: MoveRecord{
			Color:      mover.Color,
			From:       m.From,
			To:         m.To,
			DoubleStep: m.Advance(mover.Color) == 2,
		},
	}
}

// undoInfo is what unmake needs to restore a position.
type undoInfo struct {
	mover    Piece
	captured Piece
}

// make applies m in place for search and returns what unmake needs.
func (b *Board) make(m Move) undoInfo {
	u := undoInfo{mover: b.At(m.From)}
	if m.Kind == EnPassant {
		u.captured = b.At(m.Captured)
		b.Clear(m.Captured)
	} else {
		u.captured = b.At(m.To)
	}
	b.Set(m.To, u.mover)
	b.Clear(m.From)
	return u
}

// unmake reverts a move applied with make.
func (b *Board) unmake(m Move, u undoInfo) {
	b.Set(m.From, u.mover)
	if m.Kind == EnPassant {
		b.Clear(m.To)
		b.Set(m.Captured, u.captured)
		return
	}
	b.Set(m.To, u.captured)
}
