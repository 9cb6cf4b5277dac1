// Package registry maps game IDs to factories. Game packages register their
// variants from init(), so the CLI and launcher can list and build them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/superrun/internal/core"
)

// Game is what the platform drives: a fixed-tick simulation that draws into a
// cell screen. Implementations must not depend on the terminal library.
type Game interface {
	// ID is the stable identifier used by the CLI and as the storage key
	// ("superrun", "superrun_classic").
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run with the given screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with this tick's input snapshot.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State reports score, lives and the end-of-run flags.
	State() core.GameState
}

// Summarizer is implemented by games that report statistics for a finished run.
type Summarizer interface {
	Summary() core.RunSummary
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, not yet Reset, game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. The title is read from a throwaway instance.
// Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
