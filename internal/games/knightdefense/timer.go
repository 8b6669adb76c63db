package knightdefense

// ticker fires once every period platform ticks.
type ticker struct {
	period int
	acc    int
}

// Reset replaces the period and discards accumulated ticks.
func (t *ticker) Reset(period int) {
	t.period = max(1, period)
	t.acc = 0
}

// Tick advances the accumulator and reports whether the period elapsed.
func (t *ticker) Tick() bool {
	t.acc++
	if t.acc < t.period {
		return false
	}
	t.acc = 0
	return true
}
