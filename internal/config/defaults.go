package config

import (
	_ "embed"
)

//go:embed defaults/pawnwar.yaml
var defaultPawnWarYAML []byte

//go:embed defaults/knightdefense.yaml
var defaultKnightDefenseYAML []byte

// DefaultPawnWarConfig returns the default Pawn War configuration.
func DefaultPawnWarConfig() PawnWarConfig {
	return PawnWarConfig{
		AI: PawnWarAI{
			MoveDelayMS:  500,
			MinimaxDepth: 4,
		},
		Hints: PawnWarHints{
			Easy:      5,
			Medium:    3,
			Hard:      0,
			DisplayMS: 1500,
		},
		Icons: "standard",
	}
}

// DefaultKnightDefenseConfig returns the default Knight Defense configuration.
func DefaultKnightDefenseConfig() KnightDefenseConfig {
	return KnightDefenseConfig{
		Fortress: KnightDefenseFortress{Health: 10},
		Knight:   KnightDefenseKnight{StartRow: 7, StartCol: 4},
		Pawns: KnightDefensePawns{
			BaseMoveMS: 2000,
			MinMoveMS:  300,
			StepMS:     150,
		},
		Waves: KnightDefenseWaves{
			BaseIntervalMS: 10000,
			MinIntervalMS:  4000,
			EarlyStepMS:    800,
			LateStepMS:     1000,
			LateFromLevel:  3,
			BaseSize:       2,
			RandomMin:      2,
			RandomMax:      4,
			SpawnAttempts:  16,
		},
		Veterans: KnightDefenseVeterans{
			FromLevel: 5,
			Chance:    0.25,
			StepEvery: 2,
			Damage:    2,
		},
		Levels:       []int{10, 10, 15, 15, 20, 20, 25, 25, 30, 30},
		TransitionMS: 3000,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pawnwar":
		return defaultPawnWarYAML
	case "knightdefense":
		return defaultKnightDefenseYAML
	default:
		return nil
	}
}
