package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/superrun/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the launcher menu",
	Long: `Start Super Run with the launcher menu.

Pick a variant with Up/Down, a difficulty with Left/Right and press Enter.
After a run ends you return to the launcher. Tab opens the scoreboard.

Examples:
  superrun menu
  superrun menu --fps 30
  superrun menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
	addGameFlags(rootCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	// Validate flags before taking over the terminal
	if err := configureGame(flagDifficulty); err != nil {
		return err
	}

	player := startAudio()
	defer player.Close()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	preset := flagDifficulty

	for {
		menuResult, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			return err
		}
		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, tui.ViewScores)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if err := configureGame(preset); err != nil {
			return err
		}
		if err := playGame(menuResult.GameID, store, cfg); err != nil {
			return err
		}
	}
}
