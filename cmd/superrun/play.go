package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/superrun/internal/audio"
	"github.com/vovakirdan/superrun/internal/config"
	"github.com/vovakirdan/superrun/internal/core"
	"github.com/vovakirdan/superrun/internal/games/superrun"
	"github.com/vovakirdan/superrun/internal/platform/tui"
	"github.com/vovakirdan/superrun/internal/registry"
	"github.com/vovakirdan/superrun/internal/storage"
)

var (
	flagClassic    bool
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagMute       bool
	flagVolume     float64
	flagHoldTicks  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a Super Run run directly, skipping the launcher.

Controls:
  Space          - Jump
  Up/W           - Jump (alternate)
  X/Shift+Right  - Destroy the nearest obstacle ahead (uses a charge)
  M              - Cycle floor theme
  P              - Pause
  Esc/Q/Ctrl+C   - Quit
  Ctrl+S         - Save a text screenshot

Difficulty options:
  easy   - Start at lowest difficulty, 5 lives, gentle acceleration
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty, 2 lives, steep acceleration
  fixed  - No progression, stays at config's initial level

Audio:
  Sounds are synthesized unless --assets points at a directory holding
  jump.wav, stomp.wav, gameover.wav and bgm.wav. Missing files fall back
  to the synthesized cue.

Examples:
  superrun play
  superrun play --classic
  superrun play --difficulty hard --seed 42
  superrun play --config ./my-superrun.yaml
  superrun play --assets ./sounds --volume 0.4
  superrun play --mute --hold-ticks 20`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagClassic, "classic", false, "Play the single-life variant")
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with WAV sound assets")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Master volume (0..1)")
	cmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a key stays held after a press")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameID := "superrun"
	if flagClassic {
		gameID = "superrun_classic"
	}

	if err := configureGame(flagDifficulty); err != nil {
		return err
	}

	player := startAudio()
	defer player.Close()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return playGame(gameID, store, runtimeConfig())
}

// configureGame validates the game flags and hands them to the game package.
func configureGame(preset string) error {
	if preset != "" && config.ParsePreset(preset) == "" {
		return fmt.Errorf("superrun: unknown difficulty %q (want easy, normal, hard or fixed)", preset)
	}
	if flagConfig != "" {
		if _, err := config.LoadSuperRun(flagConfig); err != nil {
			return fmt.Errorf("superrun: %w", err)
		}
	}

	superrun.SetConfigPath(flagConfig)
	superrun.SetDifficultyPreset(preset)
	superrun.SetLogger(logger)
	return nil
}

// startAudio opens the speaker. A player that failed to start stays silent.
func startAudio() *audio.Player {
	player := audio.NewPlayer(audio.Options{
		AssetsDir: flagAssets,
		Mute:      flagMute,
		Volume:    flagVolume,
	}, logger)
	if err := player.Start(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	superrun.SetAudio(player)
	return player
}

// openStore opens the scores database, or returns nil to play without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without persistence", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
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

// playGame runs one game variant until it exits.
func playGame(gameID string, store *storage.Store, cfg core.RuntimeConfig) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("superrun: %w", err)
	}

	logger.Info("starting run", "game", gameID, "fps", cfg.TickRate, "seed", cfg.Seed)
	if err := tui.Run(game, store, cfg, tui.Options{HoldTicks: flagHoldTicks, Logger: logger}); err != nil {
		return fmt.Errorf("superrun: error running game: %w", err)
	}
	return nil
}
