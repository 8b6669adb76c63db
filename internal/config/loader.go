package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadPawnWar loads Pawn War configuration.
// Search order: customPath -> ~/.arcade/configs/pawnwar.yaml -> ./configs/pawnwar.yaml -> embedded default
func LoadPawnWar(customPath string) (PawnWarConfig, error) {
	return load("pawnwar", customPath, DefaultPawnWarConfig)
}

// LoadKnightDefense loads Knight Defense configuration.
// Search order: customPath -> ~/.arcade/configs/knightdefense.yaml -> ./configs/knightdefense.yaml -> embedded default
func LoadKnightDefense(customPath string) (KnightDefenseConfig, error) {
	return load("knightdefense", customPath, DefaultKnightDefenseConfig)
}

// load resolves a game's config. Files are decoded over the hard-coded
// defaults, so a file only needs the keys it changes. An explicit customPath
// must exist and be valid; files found by search are skipped when unreadable
// or invalid.
func load[T validator](gameID, customPath string, defaults func() T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data, defaults)
		if err != nil {
			return defaults(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return defaults(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data, defaults); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := decode(GetDefaultYAML(gameID), defaults); err == nil {
		return cfg, nil
	}
	return defaults(), nil // Fallback to hardcoded if embed fails
}

func decode[T any](data []byte, defaults func() T) (T, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
