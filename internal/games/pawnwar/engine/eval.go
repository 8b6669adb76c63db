package engine

// Evaluation weights.
const (
	PawnValue       = 100
	AdvanceWeight   = 10
	PassedPawnBonus = 50
	ConnectedBonus  = 5
)

// Evaluate scores b from forColor's point of view.
// Only forColor's pawns earn advancement, passed and connected bonuses; the
// opponent contributes through material alone, so Evaluate(b, White) is not
// the negation of Evaluate(b, Black).
func Evaluate(b *Board, forColor Color) int {
	score := 0
	own, opp := 0, 0
	behind := -Forward(forColor)

	for r := range Size {
		for c := range Size {
			p := b[r][c]
			if p.Kind != Pawn {
				continue
			}
			if p.Color != forColor {
				opp++
				continue
			}
			own++

			score += (r - HomeRank(forColor)) * Forward(forColor) * AdvanceWeight
			if isPassed(b, r, c, forColor) {
				score += PassedPawnBonus
			}
			if rr := r + behind; rr >= 0 && rr < Size {
				for _, cc := range [2]int{c - 1, c + 1} {
					if cc < 0 || cc >= Size {
						continue
					}
					if sp := b[rr][cc]; !sp.Empty() && sp.Color == forColor {
						score += ConnectedBonus
					}
				}
			}
		}
	}

	return score + (own-opp)*PawnValue
}

// isPassed reports whether no opposing piece stands on the pawn's file or an
// adjacent file on any rank ahead of it.
func isPassed(b *Board, r, c int, color Color) bool {
	opp := color.Opponent()
	dir := Forward(color)
	for rr := r + dir; rr >= 0 && rr < Size; rr += dir {
		for cc := c - 1; cc <= c+1; cc++ {
			if cc < 0 || cc >= Size {
				continue
			}
			if p := b[rr][cc]; !p.Empty() && p.Color == opp {
				return false
			}
		}
	}
	return true
}
