// arcade is a terminal arcade hosting Pawn War and Knight Defense.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--log <path>    - Write game logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pawn-arcade/internal/games/knightdefense"
	"github.com/vovakirdan/pawn-arcade/internal/games/pawnwar"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pawn Arcade - Chess-flavoured games in your terminal",
	Long: `Pawn Arcade is a terminal gaming platform with two games built
from chess pieces.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play

Examples:
  arcade list
  arcade play pawnwar
  arcade play pawnwar --color black --difficulty hard
  arcade play knightdefense --difficulty easy
  arcade menu
  arcade serve --ssh :2222`,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write game logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogging points both games at the --log file. The TUI owns the
// terminal, so without the flag logs are discarded.
func setupLogging(cmd *cobra.Command, _ []string) error {
	if flagLogPath == "" || cmd == serveCmd {
		return nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	setGameLoggers(f)
	return nil
}

func setGameLoggers(w io.Writer) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	pawnwar.SetLogger(logger.WithPrefix("pawnwar"))
	knightdefense.SetLogger(logger.WithPrefix("knightdefense"))
}
