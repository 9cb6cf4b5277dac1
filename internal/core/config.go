package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the simulated time covered by a single tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int           // Current score
	Lives    int           // Remaining lives
	Elapsed  time.Duration // Simulated time since the run started
	GameOver bool          // Whether the run has ended (won or lost)
	Won      bool          // Whether the run ended by reaching the goal
	Paused   bool          // Whether the game is paused
	Exit     bool          // Whether the game asks the platform to quit
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []string // Names of notable events this tick (stomp, hit, ...)
}

// RunSummary describes a finished run for the run log.
type RunSummary struct {
	Outcome string // won, lost or quit
	Score   int
	Lives   int
	Elapsed time.Duration
	Seed    int64
	Jumps   int
	Stomps  int
	Breaks  int
	Smashes int
	Pickups int
	Hits    int
}
