package engine

import "math"

// DefaultDepth is the number of plies searched below each root move.
const DefaultDepth = 4

// WinScore is the base value of a decided position. Remaining depth is added
// so that quicker wins and slower losses are preferred.
const WinScore = 10000

// Minimax is a deterministic alpha-beta search.
// Nodes below the root carry no last-move record, so en passant is never
// considered inside the tree.
type Minimax struct {
	Depth int

	// Nodes counts positions visited by the last Choose call.
	Nodes int
}

// NewMinimax returns a search of the given depth; depth <= 0 selects DefaultDepth.
func NewMinimax(depth int) *Minimax {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Minimax{Depth: depth}
}

func (m *Minimax) Name() string { return "minimax" }

// Choose returns the root move with the highest search value. Ties keep the
// earliest move in moves.
func (m *Minimax) Choose(moves []Move, b *Board, self, opp Color) (Move, bool) {
	if len(moves) == 0 {
		return Move{}, false
	}
	depth := m.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}
	m.Nodes = 0

	scratch := *b
	best := moves[0]
	bestScore := math.MinInt
	for _, mv := range moves {
		u := scratch.make(mv)
		// A child can only replace best by scoring strictly above bestScore,
		// so bestScore is a valid lower bound for the child's window.
		score := m.search(&scratch, depth, bestScore, math.MaxInt, false, self, opp)
		scratch.unmake(mv, u)
		if score > bestScore {
			bestScore = score
			best = mv
		}
	}
	return best, true
}

func (m *Minimax) search(b *Board, depth, alpha, beta int, maximizing bool, self, opp Color) int {
	m.Nodes++

	if w, ok := b.Winner(); ok {
		if w == self {
			return WinScore + depth
		}
		return -WinScore - depth
	}
	if depth == 0 {
		return Evaluate(b, self)
	}

	mover := opp
	if maximizing {
		mover = self
	}
	moves := CollectMoves(b, TurnState{Current: mover}, nil, mover)
	if len(moves) == 0 {
		return Evaluate(b, self)
	}

	if maximizing {
		value := math.MinInt
		for _, mv := range moves {
			u := b.make(mv)
			value = max(value, m.search(b, depth-1, alpha, beta, false, self, opp))
			b.unmake(mv, u)
			alpha = max(alpha, value)
			if beta <= alpha {
				break
			}
		}
		return value
	}

	value := math.MaxInt
	for _, mv := range moves {
		u := b.make(mv)
		value = min(value, m.search(b, depth-1, alpha, beta, true, self, opp))
		b.unmake(mv, u)
		beta = min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return value
}
