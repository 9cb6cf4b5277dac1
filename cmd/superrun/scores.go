package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/superrun/internal/platform/tui"
	"github.com/vovakirdan/superrun/internal/registry"
	"github.com/vovakirdan/superrun/internal/storage"
)

var (
	flagPlain     bool
	flagAllScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Open the interactive scoreboard, or print the top 10 scores of a variant.

Without a variant the scoreboard opens in the terminal (Tab switches
variant, V switches to the run log). With a variant, or with --plain,
or when stdout is not a terminal, the scores are printed.

Examples:
  superrun scores
  superrun scores superrun_classic
  superrun scores --plain
  superrun scores superrun --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print instead of opening the scoreboard")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "Print every saved score instead of the top 10")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("superrun: error opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 && !flagPlain && !flagAllScores && term.IsTerminal(int(os.Stdout.Fd())) {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, tui.ViewScores)
		return err
	}

	games, err := selectGames(args)
	if err != nil {
		return err
	}
	for i, g := range games {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, g); err != nil {
			return err
		}
	}
	return nil
}

// selectGames resolves the optional variant argument; no argument means every variant.
func selectGames(args []string) ([]registry.GameInfo, error) {
	if len(args) == 0 {
		return registry.List(), nil
	}

	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return nil, fmt.Errorf("superrun: unknown variant %q, run 'superrun list' to see them", gameID)
	}
	return []registry.GameInfo{{ID: gameID, Title: game.Title()}}, nil
}

func printScores(store *storage.Store, g registry.GameInfo) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if flagAllScores {
		scores, err = store.AllScores(g.ID)
	} else {
		scores, err = store.TopScores(g.ID, 10)
	}
	if err != nil {
		return fmt.Errorf("superrun: error retrieving scores: %w", err)
	}
	stats, err := store.ScoreStats(g.ID)
	if err != nil {
		return fmt.Errorf("superrun: error retrieving score stats: %w", err)
	}

	fmt.Printf("High Scores - %s\n", g.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("%d games, best %d, average %.0f, last played %s\n",
		stats.Count, stats.Best, stats.Average, stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}
