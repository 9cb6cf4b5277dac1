package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/superrun/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [variant]",
	Short: "Show the run log",
	Long: `Print recent runs, newest first, with a summary per variant.

Every run is logged when it exits: won, lost or quit.

Examples:
  superrun runs
  superrun runs superrun --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show per variant")
}

func runRuns(_ *cobra.Command, args []string) error {
	games, err := selectGames(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("superrun: error opening scores database: %w", err)
	}
	defer store.Close()

	for i, g := range games {
		if i > 0 {
			fmt.Println()
		}
		runs, err := store.RecentRuns(g.ID, flagRunsLimit)
		if err != nil {
			return fmt.Errorf("superrun: error retrieving runs: %w", err)
		}
		stats, err := store.GetRunStats(g.ID)
		if err != nil {
			return fmt.Errorf("superrun: error retrieving run stats: %w", err)
		}
		printRuns(g.Title, runs, stats)
	}
	return nil
}

func printRuns(title string, runs []storage.RunRecord, stats *storage.RunStats) {
	fmt.Printf("Run Log - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-7s  %-7s  %-5s  %-7s  %-5s  %-6s  %-6s  %-7s  %-4s  %s\n",
		"Result", "Score", "Lives", "Time", "Jumps", "Stomps", "Breaks", "Smashes", "Hits", "Date")
	for _, r := range runs {
		fmt.Printf("  %-7s  %-7d  %-5d  %-7s  %-5d  %-6d  %-6d  %-7d  %-4d  %s\n",
			r.Outcome, r.Score, r.Lives, r.Duration.Round(time.Second), r.Jumps, r.Stomps,
			r.Breaks, r.Smashes, r.Hits, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("%d runs: %d won, %d lost, %d quit. Best %d, average %s.\n",
		stats.Runs, stats.Wins, stats.Losses, stats.Quits, stats.BestScore, stats.AvgDuration.Round(time.Second))
}
