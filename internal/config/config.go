// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// PawnWarConfig contains all configuration for Pawn War.
type PawnWarConfig struct {
	AI    PawnWarAI    `yaml:"ai"`
	Hints PawnWarHints `yaml:"hints"`
	Icons string       `yaml:"icons"` // default icon set: "standard" or "geometric"
}

// PawnWarAI defines AI pacing and search parameters.
type PawnWarAI struct {
	MoveDelayMS  int `yaml:"move_delay_ms"` // pause before the AI replies
	MinimaxDepth int `yaml:"minimax_depth"` // plies searched below each root move
}

// PawnWarHints defines the hint budget per difficulty.
type PawnWarHints struct {
	Easy      int `yaml:"easy"`
	Medium    int `yaml:"medium"`
	Hard      int `yaml:"hard"`
	DisplayMS int `yaml:"display_ms"` // how long hint squares stay highlighted
}

// For returns the hint budget for a difficulty preset.
func (h PawnWarHints) For(d Difficulty) int {
	switch d {
	case DifficultyMedium:
		return h.Medium
	case DifficultyHard:
		return h.Hard
	default:
		return h.Easy
	}
}

// Validate reports every invalid field at once.
func (c PawnWarConfig) Validate() error {
	var errs error
	if c.AI.MoveDelayMS < 0 {
		errs = multierror.Append(errs, fmt.Errorf("ai.move_delay_ms must not be negative, got %d", c.AI.MoveDelayMS))
	}
	if c.AI.MinimaxDepth < 1 || c.AI.MinimaxDepth > 8 {
		errs = multierror.Append(errs, fmt.Errorf("ai.minimax_depth must be within 1..8, got %d", c.AI.MinimaxDepth))
	}
	for _, d := range Difficulties() {
		if n := c.Hints.For(d); n < 0 {
			errs = multierror.Append(errs, fmt.Errorf("hints.%s must not be negative, got %d", d, n))
		}
	}
	if c.Hints.DisplayMS <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("hints.display_ms must be positive, got %d", c.Hints.DisplayMS))
	}
	switch c.Icons {
	case "standard", "geometric":
	default:
		errs = multierror.Append(errs, fmt.Errorf("icons must be standard or geometric, got %q", c.Icons))
	}
	return errs
}

// KnightDefenseConfig contains all configuration for Knight Defense.
type KnightDefenseConfig struct {
	Fortress     KnightDefenseFortress `yaml:"fortress"`
	Knight       KnightDefenseKnight   `yaml:"knight"`
	Pawns        KnightDefensePawns    `yaml:"pawns"`
	Waves        KnightDefenseWaves    `yaml:"waves"`
	Veterans     KnightDefenseVeterans `yaml:"veterans"`
	Levels       []int                 `yaml:"levels"` // captures required per level
	TransitionMS int                   `yaml:"transition_ms"`
}

// KnightDefenseFortress defines the defended row.
type KnightDefenseFortress struct {
	Health int `yaml:"health"`
}

// KnightDefenseKnight defines the knight's starting square.
type KnightDefenseKnight struct {
	StartRow int `yaml:"start_row"`
	StartCol int `yaml:"start_col"`
}

// KnightDefensePawns defines how fast units advance.
type KnightDefensePawns struct {
	BaseMoveMS int `yaml:"base_move_ms"`
	MinMoveMS  int `yaml:"min_move_ms"`
	StepMS     int `yaml:"step_ms"` // speed-up per tier
}

// KnightDefenseWaves defines spawn timing and size.
type KnightDefenseWaves struct {
	BaseIntervalMS int `yaml:"base_interval_ms"`
	MinIntervalMS  int `yaml:"min_interval_ms"`
	EarlyStepMS    int `yaml:"early_step_ms"` // interval reduction per tier before LateFromLevel
	LateStepMS     int `yaml:"late_step_ms"`  // interval reduction per tier from LateFromLevel
	LateFromLevel  int `yaml:"late_from_level"`
	BaseSize       int `yaml:"base_size"`
	RandomMin      int `yaml:"random_min"` // wave size range from LateFromLevel
	RandomMax      int `yaml:"random_max"`
	SpawnAttempts  int `yaml:"spawn_attempts"`
}

// KnightDefenseVeterans defines the slower, harder-hitting unit type.
type KnightDefenseVeterans struct {
	FromLevel int     `yaml:"from_level"`
	Chance    float64 `yaml:"chance"`     // share of spawns, 0..1
	StepEvery int     `yaml:"step_every"` // advances once every N pawn ticks
	Damage    int     `yaml:"damage"`
}

// Validate reports every invalid field at once.
func (c KnightDefenseConfig) Validate() error {
	var errs error
	if c.Fortress.Health <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("fortress.health must be positive, got %d", c.Fortress.Health))
	}
	if c.Knight.StartRow < 0 || c.Knight.StartRow > 7 || c.Knight.StartCol < 0 || c.Knight.StartCol > 7 {
		errs = multierror.Append(errs, fmt.Errorf("knight start (%d,%d) is off the board", c.Knight.StartRow, c.Knight.StartCol))
	}
	if c.Knight.StartRow == 0 {
		errs = multierror.Append(errs, fmt.Errorf("knight must not start on the spawn row"))
	}
	if c.Pawns.MinMoveMS <= 0 || c.Pawns.BaseMoveMS < c.Pawns.MinMoveMS {
		errs = multierror.Append(errs, fmt.Errorf("pawns: need 0 < min_move_ms <= base_move_ms, got %d and %d", c.Pawns.MinMoveMS, c.Pawns.BaseMoveMS))
	}
	if c.Waves.MinIntervalMS <= 0 || c.Waves.BaseIntervalMS < c.Waves.MinIntervalMS {
		errs = multierror.Append(errs, fmt.Errorf("waves: need 0 < min_interval_ms <= base_interval_ms, got %d and %d", c.Waves.MinIntervalMS, c.Waves.BaseIntervalMS))
	}
	if c.Waves.RandomMin < 1 || c.Waves.RandomMax < c.Waves.RandomMin {
		errs = multierror.Append(errs, fmt.Errorf("waves: need 1 <= random_min <= random_max, got %d and %d", c.Waves.RandomMin, c.Waves.RandomMax))
	}
	if c.Waves.BaseSize < 1 {
		errs = multierror.Append(errs, fmt.Errorf("waves.base_size must be positive, got %d", c.Waves.BaseSize))
	}
	if c.Waves.SpawnAttempts < 1 {
		errs = multierror.Append(errs, fmt.Errorf("waves.spawn_attempts must be positive, got %d", c.Waves.SpawnAttempts))
	}
	if c.Veterans.Chance < 0 || c.Veterans.Chance > 1 {
		errs = multierror.Append(errs, fmt.Errorf("veterans.chance must be within 0..1, got %g", c.Veterans.Chance))
	}
	if c.Veterans.StepEvery < 1 || c.Veterans.Damage < 1 {
		errs = multierror.Append(errs, fmt.Errorf("veterans: step_every and damage must be positive"))
	}
	if len(c.Levels) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("levels must list at least one capture requirement"))
	}
	for i, req := range c.Levels {
		if req <= 0 {
			errs = multierror.Append(errs, fmt.Errorf("levels[%d] must be positive, got %d", i, req))
		}
	}
	if c.TransitionMS < 0 {
		errs = multierror.Append(errs, fmt.Errorf("transition_ms must not be negative, got %d", c.TransitionMS))
	}
	return errs
}
