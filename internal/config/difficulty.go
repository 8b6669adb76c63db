package config

import (
	"fmt"
	"math/rand"
)

// Difficulty is a named difficulty preset selectable from the CLI and menus.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the presets in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty validates a preset name. The empty string selects easy.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case "":
		return DifficultyEasy, nil
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// ApplyKnightDefensePreset adjusts fortress health for a preset.
func ApplyKnightDefensePreset(cfg *KnightDefenseConfig, preset Difficulty) {
	switch preset {
	case DifficultyEasy:
		cfg.Fortress.Health += 5
	case DifficultyHard:
		cfg.Fortress.Health = max(1, cfg.Fortress.Health-3)
	}
}

// LevelCurve derives Knight Defense pacing from the current level.
// Levels are grouped in pairs ("tiers") that share the same speed.
type LevelCurve struct {
	pawns KnightDefensePawns
	waves KnightDefenseWaves
}

// NewLevelCurve creates a curve from the pawn and wave settings.
func NewLevelCurve(cfg KnightDefenseConfig) *LevelCurve {
	return &LevelCurve{pawns: cfg.Pawns, waves: cfg.Waves}
}

// Tier returns the tier of a level: levels 1-2 are tier 1, 3-4 tier 2, and so on.
func (c *LevelCurve) Tier(level int) int {
	return (level + 1) / 2
}

// MoveIntervalMS returns the time between unit steps.
func (c *LevelCurve) MoveIntervalMS(level int) int {
	return max(c.pawns.MinMoveMS, c.pawns.BaseMoveMS-(c.Tier(level)-1)*c.pawns.StepMS)
}

// WaveIntervalMS returns the time between waves.
func (c *LevelCurve) WaveIntervalMS(level int) int {
	step := c.waves.EarlyStepMS
	if level >= c.waves.LateFromLevel {
		step = c.waves.LateStepMS
	}
	return max(c.waves.MinIntervalMS, c.waves.BaseIntervalMS-(c.Tier(level)-1)*step)
}

// WaveSize returns how many units the next wave tries to spawn.
// Early levels grow slowly with the tier; later levels draw uniformly from
// the configured range.
func (c *LevelCurve) WaveSize(level int, rng *rand.Rand) int {
	if level < c.waves.LateFromLevel {
		return c.waves.BaseSize + c.Tier(level)/2
	}
	return c.waves.RandomMin + rng.Intn(c.waves.RandomMax-c.waves.RandomMin+1)
}
