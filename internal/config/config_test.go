package config

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var pw PawnWarConfig
	if err := yaml.Unmarshal(GetDefaultYAML("pawnwar"), &pw); err != nil {
		t.Fatalf("embedded pawnwar.yaml: %v", err)
	}
	if !reflect.DeepEqual(pw, DefaultPawnWarConfig()) {
		t.Errorf("embedded pawnwar.yaml = %+v, hardcoded = %+v", pw, DefaultPawnWarConfig())
	}

	var kd KnightDefenseConfig
	if err := yaml.Unmarshal(GetDefaultYAML("knightdefense"), &kd); err != nil {
		t.Fatalf("embedded knightdefense.yaml: %v", err)
	}
	if !reflect.DeepEqual(kd, DefaultKnightDefenseConfig()) {
		t.Errorf("embedded knightdefense.yaml = %+v, hardcoded = %+v", kd, DefaultKnightDefenseConfig())
	}

	if GetDefaultYAML("unknown") != nil {
		t.Error("unknown game should have no embedded config")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultPawnWarConfig().Validate(); err != nil {
		t.Errorf("pawnwar defaults: %v", err)
	}
	if err := DefaultKnightDefenseConfig().Validate(); err != nil {
		t.Errorf("knightdefense defaults: %v", err)
	}
}

func TestLoadPawnWarCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pw.yaml")
	writeFile(t, path, "ai:\n  move_delay_ms: 0\nhints:\n  easy: 9\n")

	cfg, err := LoadPawnWar(path)
	if err != nil {
		t.Fatalf("LoadPawnWar: %v", err)
	}
	if cfg.AI.MoveDelayMS != 0 || cfg.Hints.Easy != 9 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.AI.MinimaxDepth != 4 || cfg.Hints.Medium != 3 || cfg.Hints.DisplayMS != 1500 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPawnWar(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "ai: [not, a, map")
	if _, err := LoadPawnWar(bad); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("malformed config: err = %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "fortress:\n  health: 0\nlevels: []\n")
	_, err := LoadKnightDefense(invalid)
	if err == nil {
		t.Fatal("invalid config should fail")
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("expected a multierror, got %T", err)
	}
	if len(merr.Errors) != 2 {
		t.Errorf("expected 2 problems, got %d: %v", len(merr.Errors), merr)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := LoadPawnWar("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AI.MoveDelayMS != 500 {
		t.Errorf("MoveDelayMS = %d, expected embedded 500", cfg.AI.MoveDelayMS)
	}

	// ./configs is used next
	writeFile(t, filepath.Join(work, "configs", "pawnwar.yaml"), "ai:\n  move_delay_ms: 250\n")
	cfg, _ = LoadPawnWar("")
	if cfg.AI.MoveDelayMS != 250 {
		t.Errorf("MoveDelayMS = %d, expected local 250", cfg.AI.MoveDelayMS)
	}

	// ~/.arcade/configs wins over ./configs
	writeFile(t, filepath.Join(home, ".arcade", "configs", "pawnwar.yaml"), "ai:\n  move_delay_ms: 100\n")
	cfg, _ = LoadPawnWar("")
	if cfg.AI.MoveDelayMS != 100 {
		t.Errorf("MoveDelayMS = %d, expected user 100", cfg.AI.MoveDelayMS)
	}

	// An invalid user file is skipped
	writeFile(t, filepath.Join(home, ".arcade", "configs", "pawnwar.yaml"), "ai:\n  minimax_depth: 99\n")
	cfg, _ = LoadPawnWar("")
	if cfg.AI.MoveDelayMS != 250 {
		t.Errorf("MoveDelayMS = %d, expected fallback to local 250", cfg.AI.MoveDelayMS)
	}
}

func TestPawnWarValidate(t *testing.T) {
	cfg := DefaultPawnWarConfig()
	cfg.AI.MinimaxDepth = 0
	cfg.Hints.Hard = -1
	cfg.Icons = "emoji"

	err := cfg.Validate()
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("expected a multierror, got %v", err)
	}
	if len(merr.Errors) != 3 {
		t.Errorf("expected 3 problems, got %d: %v", len(merr.Errors), merr)
	}
}

func TestHintsFor(t *testing.T) {
	h := DefaultPawnWarConfig().Hints
	tests := map[Difficulty]int{
		DifficultyEasy:   5,
		DifficultyMedium: 3,
		DifficultyHard:   0,
	}
	for d, want := range tests {
		if got := h.For(d); got != want {
			t.Errorf("For(%s) = %d, expected %d", d, got, want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"", DifficultyEasy, false},
		{"easy", DifficultyEasy, false},
		{"medium", DifficultyMedium, false},
		{"hard", DifficultyHard, false},
		{"normal", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDifficulty(%q) = (%q, %v)", tt.in, got, err)
		}
	}
}

func TestApplyKnightDefensePreset(t *testing.T) {
	tests := []struct {
		preset Difficulty
		want   int
	}{
		{DifficultyEasy, 15},
		{DifficultyMedium, 10},
		{DifficultyHard, 7},
	}
	for _, tt := range tests {
		cfg := DefaultKnightDefenseConfig()
		ApplyKnightDefensePreset(&cfg, tt.preset)
		if cfg.Fortress.Health != tt.want {
			t.Errorf("%s: health = %d, expected %d", tt.preset, cfg.Fortress.Health, tt.want)
		}
	}
}

func TestLevelCurve(t *testing.T) {
	curve := NewLevelCurve(DefaultKnightDefenseConfig())

	tests := []struct {
		level     int
		tier      int
		moveMS    int
		waveMS    int
		fixedSize int // 0 when the size is random
	}{
		{1, 1, 2000, 10000, 2},
		{2, 1, 2000, 10000, 2},
		{3, 2, 1850, 9000, 0},
		{4, 2, 1850, 9000, 0},
		{5, 3, 1700, 8000, 0},
		{10, 5, 1400, 6000, 0},
		{30, 15, 300, 4000, 0}, // both intervals clamp
	}

	rng := rand.New(rand.NewSource(1))
	for _, tt := range tests {
		if got := curve.Tier(tt.level); got != tt.tier {
			t.Errorf("Tier(%d) = %d, expected %d", tt.level, got, tt.tier)
		}
		if got := curve.MoveIntervalMS(tt.level); got != tt.moveMS {
			t.Errorf("MoveIntervalMS(%d) = %d, expected %d", tt.level, got, tt.moveMS)
		}
		if got := curve.WaveIntervalMS(tt.level); got != tt.waveMS {
			t.Errorf("WaveIntervalMS(%d) = %d, expected %d", tt.level, got, tt.waveMS)
		}
		for range 20 {
			size := curve.WaveSize(tt.level, rng)
			if tt.fixedSize != 0 && size != tt.fixedSize {
				t.Errorf("WaveSize(%d) = %d, expected %d", tt.level, size, tt.fixedSize)
			}
			if tt.fixedSize == 0 && (size < 2 || size > 4) {
				t.Errorf("WaveSize(%d) = %d, expected 2..4", tt.level, size)
			}
		}
	}
}

func TestLevelCurveEarlyWaveStep(t *testing.T) {
	cfg := DefaultKnightDefenseConfig()
	cfg.Waves.LateFromLevel = 5
	curve := NewLevelCurve(cfg)

	// Tier 2 before the late threshold uses the early step
	if got := curve.WaveIntervalMS(3); got != 9200 {
		t.Errorf("WaveIntervalMS(3) = %d, expected 9200", got)
	}
	if got := curve.WaveSize(4, nil); got != 3 {
		t.Errorf("WaveSize(4) = %d, expected 2 + tier/2 = 3", got)
	}
}
