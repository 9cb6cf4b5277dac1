// Package superrun implements Super Run, a side-scrolling runner: the player
// jumps over, stomps or destroys obstacles, collects power-ups and races to
// the goal flag.
package superrun

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/superrun/internal/config"
	"github.com/vovakirdan/superrun/internal/core"
	"github.com/vovakirdan/superrun/internal/registry"
)

// Game adapts a Session to the registry.Game interface.
type Game struct {
	classic bool
	runtime core.RuntimeConfig
	session *Session
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

var (
	audio  Audio       = nopAudio{}
	logger *log.Logger = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset) // "" means use config default
}

// SetAudio sets the audio backend used by new sessions.
func SetAudio(a Audio) {
	if a == nil {
		a = nopAudio{}
	}
	audio = a
}

// SetLogger sets the logger used by new sessions.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a Super Run game with multiple lives.
func New() *Game {
	return &Game{}
}

// NewClassic creates the single-life variant.
func NewClassic() *Game {
	return &Game{classic: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.classic {
		return "superrun_classic"
	}
	return "superrun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.classic {
		return "Super Run (Classic)"
	}
	return "Super Run"
}

// Reset loads the tuning and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSuperRun(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultSuperRunConfig()
	}
	if difficultyPreset != "" {
		config.ApplySuperRunPreset(&cfg, difficultyPreset)
	}
	if g.classic {
		cfg.Player.Lives = 1
	}

	g.session = NewSession(cfg, runtime.Seed, runtime.TickRate)
	g.session.SetAudio(audio)
	g.session.SetLogger(logger.With("game", g.ID()))
	logger.Debug("session started", "game", g.ID(), "seed", runtime.Seed, "lives", cfg.Player.Lives)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := g.session.Step(in)
	out := make([]string, len(events))
	copy(out, events)
	return core.StepResult{State: g.State(), Events: out}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.session.Render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		Lives:    s.Lives(),
		Elapsed:  s.Elapsed(),
		GameOver: s.State().Terminal(),
		Won:      s.State() == StateWon,
		Paused:   s.Paused(),
		Exit:     s.State() == StateExiting,
	}
}

// Summary reports the run statistics for the run log.
func (g *Game) Summary() core.RunSummary {
	s := g.session
	st := s.Stats()
	outcome := "quit"
	if r := s.Result(); r.Terminal() {
		outcome = r.String()
	}
	return core.RunSummary{
		Outcome: outcome,
		Score:   s.Score(),
		Lives:   s.Lives(),
		Elapsed: s.Elapsed(),
		Seed:    g.runtime.Seed,
		Jumps:   st.Jumps,
		Stomps:  st.Stomps,
		Breaks:  st.Breaks,
		Smashes: st.Smashes,
		Pickups: st.Pickups,
		Hits:    st.Hits,
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Register the game variants with the registry
func init() {
	registry.Register("superrun", func() registry.Game {
		return New()
	})
	registry.Register("superrun_classic", func() registry.Game {
		return NewClassic()
	})
}
