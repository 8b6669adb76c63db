package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pawn-arcade/internal/platform/tui"
	"github.com/vovakirdan/pawn-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Quitting a game returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --log ./arcade.log`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config
		if menuResult.Quit || menuResult.GameID == "" {
			return
		}

		if err := configureGame(menuResult.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if err := tui.Run(game, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
	}
}
