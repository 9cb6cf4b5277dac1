package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/superrun/internal/storage"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset [variant]",
	Short: "Delete saved scores and runs",
	Long: `Delete the high scores and the run log of a variant, or of every
variant when none is given. Nothing is deleted without --yes.

Examples:
  superrun reset superrun_classic --yes
  superrun reset --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Confirm the deletion")
}

func runReset(_ *cobra.Command, args []string) error {
	games, err := selectGames(args)
	if err != nil {
		return err
	}
	if !flagResetYes {
		return fmt.Errorf("superrun: refusing to delete %d variant(s) without --yes", len(games))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("superrun: error opening scores database: %w", err)
	}
	defer store.Close()

	for _, g := range games {
		if err := store.Reset(g.ID); err != nil {
			return fmt.Errorf("superrun: error resetting %s: %w", g.ID, err)
		}
		logger.Info("scores reset", "game", g.ID)
		fmt.Printf("Cleared scores and runs for %s\n", g.Title)
	}
	return nil
}
