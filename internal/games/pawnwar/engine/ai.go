package engine

import (
	"fmt"
	"math/rand"
	"slices"
)

// Difficulty selects the AI strategy and the hint budget.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// String returns the lowercase name used by configs and flags.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", uint8(d))
	}
}

// ParseDifficulty parses "easy", "medium" or "hard".
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("engine: unknown difficulty %q", s)
	}
}

// Strategy picks one move out of the legal moves for self.
// Implementations must not mutate b.
type Strategy interface {
	Name() string
	Choose(moves []Move, b *Board, self, opp Color) (Move, bool)
}

// StrategyFor maps a difficulty to its strategy. depth is only used by Minimax.
func StrategyFor(d Difficulty, rng *rand.Rand, depth int) Strategy {
	switch d {
	case Medium:
		return &ShallowSafety{rng: rng}
	case Hard:
		return &Minimax{Depth: depth}
	default:
		return &Greedy{rng: rng}
	}
}

// Greedy takes a win, then any capture, then the longest advance.
type Greedy struct {
	rng *rand.Rand
}

// NewGreedy returns a Greedy strategy drawing from rng.
func NewGreedy(rng *rand.Rand) *Greedy { return &Greedy{rng: rng} }

func (g *Greedy) Name() string { return "greedy" }

func (g *Greedy) Choose(moves []Move, b *Board, self, _ Color) (Move, bool) {
	if len(moves) == 0 {
		return Move{}, false
	}
	if m, ok := winningMove(moves, self); ok {
		return m, true
	}
	if caps := captures(moves, b); len(caps) > 0 {
		return pick(g.rng, caps), true
	}
	if m, ok := furthestAdvance(moves, b, self); ok {
		return m, true
	}
	return pick(g.rng, moves), true
}

// ShallowSafety prefers captures the opponent cannot answer by recapturing
// on the same square.
type ShallowSafety struct {
	rng *rand.Rand
}

// NewShallowSafety returns a ShallowSafety strategy drawing from rng.
func NewShallowSafety(rng *rand.Rand) *ShallowSafety { return &ShallowSafety{rng: rng} }

func (s *ShallowSafety) Name() string { return "shallow-safety" }

func (s *ShallowSafety) Choose(moves []Move, b *Board, self, opp Color) (Move, bool) {
	if len(moves) == 0 {
		return Move{}, false
	}
	if m, ok := winningMove(moves, self); ok {
		return m, true
	}

	caps := captures(moves, b)
	if len(caps) > 0 {
		scratch := *b
		var safe []Move
		for _, m := range caps {
			u := scratch.make(m)
			if !canReach(&scratch, opp, m.To) {
				safe = append(safe, m)
			}
			scratch.unmake(m, u)
		}
		if len(safe) > 0 {
			return pick(s.rng, safe), true
		}
		return pick(s.rng, caps), true
	}

	if m, ok := furthestAdvance(moves, b, self); ok {
		return m, true
	}
	return pick(s.rng, moves), true
}

// Suggest computes a hint for forColor: the ShallowSafety choice with
// forColor in the role of the mover. The board is not modified.
func Suggest(b *Board, ts TurnState, used EnPassantUsage, forColor, oppColor Color, rng *rand.Rand) (Move, bool) {
	moves := CollectMoves(b, ts, used, forColor)
	return NewShallowSafety(rng).Choose(moves, b, forColor, oppColor)
}

// canReach reports whether any pawn of color can move onto sq without
// en passant.
func canReach(b *Board, color Color, sq Square) bool {
	for r := range Size {
		for c := range Size {
			if p := b[r][c]; p.Kind != Pawn || p.Color != color {
				continue
			}
			if _, ok := Validate(b, TurnState{Current: color}, nil, color, Sq(r, c), sq); ok {
				return true
			}
		}
	}
	return false
}

func winningMove(moves []Move, self Color) (Move, bool) {
	row := PromotionRank(self)
	for _, m := range moves {
		if m.To.Row == row {
			return m, true
		}
	}
	return Move{}, false
}

func captures(moves []Move, b *Board) []Move {
	var out []Move
	for _, m := range moves {
		if m.IsCapture(b) {
			out = append(out, m)
		}
	}
	return out
}

// furthestAdvance returns the non-capturing move whose destination lies
// closest to self's promotion rank. The first such move wins ties.
func furthestAdvance(moves []Move, b *Board, self Color) (Move, bool) {
	var quiet []Move
	for _, m := range moves {
		if !m.IsCapture(b) {
			quiet = append(quiet, m)
		}
	}
	if len(quiet) == 0 {
		return Move{}, false
	}
	slices.SortStableFunc(quiet, func(a, b Move) int {
		return progress(b.To, self) - progress(a.To, self)
	})
	return quiet[0], true
}

// progress is how many rows sq lies beyond color's home rank.
func progress(sq Square, c Color) int {
	return (sq.Row - HomeRank(c)) * Forward(c)
}

func pick(rng *rand.Rand, moves []Move) Move {
	return moves[rng.Intn(len(moves))]
}
