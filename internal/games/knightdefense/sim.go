package knightdefense

import "fmt"

// unitAt returns the unit on p, or nil.
func (g *Game) unitAt(p Pos) *Unit {
	return g.units[p.Row][p.Col]
}

// unitCount returns the number of attackers on the board.
func (g *Game) unitCount() int {
	n := 0
	for r := range Size {
		for c := range Size {
			if g.units[r][c] != nil {
				n++
			}
		}
	}
	return n
}

func (g *Game) clearUnits() {
	g.units = [Size][Size]*Unit{}
}

// newUnit rolls the kind of a freshly spawned attacker.
func (g *Game) newUnit() *Unit {
	if g.level >= g.cfg.Veterans.FromLevel && g.rng.Float64() < g.cfg.Veterans.Chance {
		return &Unit{Kind: KindVeteran}
	}
	return &Unit{Kind: KindPawn}
}

func (g *Game) stepEvery(u *Unit) int {
	if u.Kind == KindVeteran {
		return g.cfg.Veterans.StepEvery
	}
	return 1
}

func (g *Game) damage(u *Unit) int {
	if u.Kind == KindVeteran {
		return g.cfg.Veterans.Damage
	}
	return 1
}

// spawnOpener places the single level 1 opener in column 3 or 4.
func (g *Game) spawnOpener() {
	col := 3 + g.rng.Intn(2)
	for range Size {
		if g.units[spawnRow][col] == nil {
			g.units[spawnRow][col] = &Unit{Kind: KindPawn}
			g.awaitingOpener = true
			return
		}
		col = (col + 1) % Size
	}
}

// spawnWave drops up to a wave's worth of units on free spawn-row columns.
// Each attempt draws from the columns not yet used by this wave.
func (g *Game) spawnWave() int {
	want := g.curve.WaveSize(g.level, g.rng)
	columns := make([]int, Size)
	for i := range columns {
		columns[i] = i
	}

	spawned := 0
	for attempt := 0; spawned < want && attempt < g.cfg.Waves.SpawnAttempts && len(columns) > 0; attempt++ {
		i := g.rng.Intn(len(columns))
		col := columns[i]
		if g.units[spawnRow][col] != nil || g.knight == (Pos{spawnRow, col}) {
			continue
		}
		g.units[spawnRow][col] = g.newUnit()
		columns = append(columns[:i], columns[i+1:]...)
		spawned++
	}
	if spawned > 0 {
		g.log.Debug("wave spawned", "level", g.level, "units", spawned, "wanted", want)
	}
	return spawned
}

// advanceUnits runs one pawn tick. Rows are processed from the fortress
// upward so a unit never moves twice in one pass.
func (g *Game) advanceUnits() {
	for r := Size - 1; r >= 0; r-- {
		for c := range Size {
			u := g.units[r][c]
			if u == nil {
				continue
			}
			u.charge++
			if u.charge < g.stepEvery(u) {
				continue
			}
			u.charge = 0

			if r == fortressRow {
				g.units[r][c] = nil
				g.hitFortress(u, fmt.Sprintf("Fortress hit! Health: %d", g.health-g.damage(u)))
				continue
			}

			next := Pos{r + 1, c}
			switch {
			case next == g.knight:
				g.units[r][c] = nil
				g.hitFortress(u, "Knight was overrun! Fortress takes damage!")
			case g.unitAt(next) == nil:
				g.units[next.Row][next.Col] = u
				g.units[r][c] = nil
			}
			// Otherwise blocked: the unit waits.
		}
	}
	g.releaseOpener()
}

func (g *Game) hitFortress(u *Unit, msg string) {
	g.health -= g.damage(u)
	g.message = msg
	g.log.Info("fortress hit", "unit", u.Kind, "health", g.health)
	if g.health <= 0 {
		g.health = 0
		g.gameOver = true
		g.message = "The Fortress has fallen!"
		g.log.Info("game over", "level", g.level, "captures", g.captures)
	}
}

// releaseOpener starts timed waves once the level 1 opener is gone.
func (g *Game) releaseOpener() {
	if !g.awaitingOpener || g.gameOver || g.unitCount() > 0 {
		return
	}
	g.awaitingOpener = false
	g.spawnWave()
	g.waveTimer.Reset(g.runtime.TickMillis(g.curve.WaveIntervalMS(g.level)))
}

// clickSquare selects the knight or jumps it to p.
// The knight stays selected after a jump.
func (g *Game) clickSquare(p Pos) {
	if !g.selected {
		if p == g.knight {
			g.selected = true
		}
		return
	}
	if p == g.knight {
		g.selected = false
		return
	}
	if !isKnightMove(g.knight, p) {
		return
	}

	g.knight = p
	if g.unitAt(p) == nil {
		return
	}
	g.units[p.Row][p.Col] = nil
	g.captures++
	g.message = fmt.Sprintf("Captured! %d total", g.captures)
	g.checkLevelUp()
	g.releaseOpener()
}

// requirement returns the captures needed to finish the current level.
func (g *Game) requirement() int {
	return g.cfg.Levels[min(g.level, len(g.cfg.Levels))-1]
}

// checkLevelUp advances the level when captures hit a multiple of the
// current requirement. Finishing the last level wins the game.
func (g *Game) checkLevelUp() {
	req := g.requirement()
	if g.captures < req || g.captures%req != 0 {
		return
	}

	if g.level >= len(g.cfg.Levels) {
		g.won = true
		g.gameOver = true
		g.message = "The Fortress stands! All levels cleared."
		g.log.Info("victory", "captures", g.captures)
		return
	}

	g.level++
	g.clearUnits()
	g.awaitingOpener = false
	g.applyLevel()
	if g.cfg.TransitionMS > 0 {
		g.transition = g.runtime.TickMillis(g.cfg.TransitionMS)
	}
	g.message = fmt.Sprintf("Level %d!", g.level)
	g.log.Info("level up",
		"level", g.level,
		"move_ms", g.curve.MoveIntervalMS(g.level),
		"wave_ms", g.curve.WaveIntervalMS(g.level),
	)
}

// applyLevel replaces both timers with the current level's intervals.
func (g *Game) applyLevel() {
	g.moveTimer.Reset(g.runtime.TickMillis(g.curve.MoveIntervalMS(g.level)))
	g.waveTimer.Reset(g.runtime.TickMillis(g.curve.WaveIntervalMS(g.level)))
}
