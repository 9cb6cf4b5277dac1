// superrun is a side-scrolling runner for the terminal.
//
// Usage:
//
//	superrun                  - Start the launcher menu
//	superrun play             - Start a run directly
//	superrun list             - List the game variants
//	superrun scores [variant] - Show high scores
//	superrun runs [variant]   - Show the run log
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.superrun/scores.db)
//	--log <path>    - Write a debug log to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/superrun/internal/games/superrun"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagVerbose bool
)

// logger is set up in the root PersistentPreRunE; the TUI owns the terminal,
// so it writes to --log or nowhere.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "superrun",
	Short: "Super Run - a side-scrolling runner in your terminal",
	Long: `Super Run is a side-scrolling runner: jump over obstacles, stomp them
from above, break them with destruction charges and race to the goal flag.

Available commands:
  menu     - Launcher with variant and difficulty picker (default)
  play     - Start a run directly
  list     - Show the game variants
  scores   - View high scores
  runs     - View the run log

Examples:
  superrun
  superrun play --difficulty hard
  superrun play --classic --seed 42
  superrun scores
  superrun runs --limit 5`,
	PersistentPreRunE: setupLogger,
	RunE:              runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.superrun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(resetCmd)
}

// setupLogger opens the --log file if one was given.
func setupLogger(_ *cobra.Command, _ []string) error {
	if flagLogPath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(flagLogPath), 0o755); err != nil {
		return fmt.Errorf("superrun: cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("superrun: cannot open log file: %w", err)
	}
	logFile = f

	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "superrun",
		Level:           level,
	})
	return nil
}
