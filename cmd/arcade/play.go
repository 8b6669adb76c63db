package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pawn-arcade/internal/core"
	"github.com/vovakirdan/pawn-arcade/internal/games/knightdefense"
	"github.com/vovakirdan/pawn-arcade/internal/games/pawnwar"
	"github.com/vovakirdan/pawn-arcade/internal/games/pawnwar/engine"
	"github.com/vovakirdan/pawn-arcade/internal/platform/tui"
	"github.com/vovakirdan/pawn-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagColor      string
	flagIcons      string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move the cursor
  Enter/Click - Select a piece or square
  U           - Undo (Pawn War)
  H           - Hint (Pawn War)
  P           - Pause
  R           - Restart
  ?           - Show all key bindings
  Q/Ctrl+C    - Quit

Pawn War setup:
  Without --color the game opens its setup screen. With --color the
  side, --difficulty and --icons are applied and the setup is skipped.

Difficulty options:
  easy, medium, hard
  Pawn War: picks the AI. Knight Defense: sets the fortress health.

Examples:
  arcade play pawnwar
  arcade play pawnwar --color black --difficulty hard --icons geometric
  arcade play knightdefense --difficulty easy
  arcade play knightdefense --config ./my-knightdefense.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	playCmd.Flags().StringVar(&flagColor, "color", "", "Pawn War side: white or black (skips setup)")
	playCmd.Flags().StringVar(&flagIcons, "icons", pawnwar.IconsStandard, "Pawn War icon set: standard or geometric")
}

// configureGame applies the play flags to a game's package settings
// before the registry creates it.
func configureGame(gameID string) error {
	switch gameID {
	case "pawnwar":
		pawnwar.SetConfigPath(flagConfig)
		if flagColor == "" {
			return nil
		}
		setup, err := pawnWarSetup()
		if err != nil {
			return err
		}
		pawnwar.SetSetup(setup)
	case "knightdefense":
		knightdefense.SetConfigPath(flagConfig)
		knightdefense.SetDifficultyPreset(flagDifficulty)
	}
	return nil
}

func pawnWarSetup() (engine.Setup, error) {
	color, err := engine.ParseColor(flagColor)
	if err != nil {
		return engine.Setup{}, fmt.Errorf("--color: %w", err)
	}
	level := engine.Easy
	if flagDifficulty != "" {
		if level, err = engine.ParseDifficulty(flagDifficulty); err != nil {
			return engine.Setup{}, fmt.Errorf("--difficulty: %w", err)
		}
	}
	if flagIcons != pawnwar.IconsStandard && flagIcons != pawnwar.IconsGeometric {
		return engine.Setup{}, fmt.Errorf("--icons: unknown icon set %q", flagIcons)
	}
	return engine.Setup{PlayerColor: color, Difficulty: level, IconSet: flagIcons}, nil
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if err := configureGame(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, terminalConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
