package engine

import "slices"

// snapshot is a deep copy of everything a human move can change.
type snapshot struct {
	board            Board
	turn             TurnState
	used             EnPassantUsage
	capturedByPlayer []Piece
	capturedByAI     []Piece
	phase            Phase
	winner           Color
}

func (s *Session) takeSnapshot() snapshot {
	return snapshot{
		board:            s.board,
		turn:             s.turn.clone(),
		used:             s.used.Clone(),
		capturedByPlayer: slices.Clone(s.capturedByPlayer),
		capturedByAI:     slices.Clone(s.capturedByAI),
		phase:            s.phase,
		winner:           s.winner,
	}
}

func (s *Session) restore(snap snapshot) {
	s.board = snap.board
	s.turn = snap.turn.clone()
	s.used = snap.used.Clone()
	s.capturedByPlayer = slices.Clone(snap.capturedByPlayer)
	s.capturedByAI = slices.Clone(snap.capturedByAI)
	s.phase = snap.phase
	s.winner = snap.winner
}

func (ts TurnState) clone() TurnState {
	out := TurnState{Current: ts.Current}
	if ts.LastMove != nil {
		rec := *ts.LastMove
		out.LastMove = &rec
	}
	return out
}
