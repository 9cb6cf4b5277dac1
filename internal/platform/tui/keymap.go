package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/superrun/internal/core"
)

// DefaultHoldTicks is how long an action stays held after its last key event.
// It must outlast the terminal's auto-repeat delay (250-500ms).
const DefaultHoldTicks = 30

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case " ", "space":
		return core.ActionJump, false
	case "up", "w":
		return core.ActionJumpAlt, false
	case "x", "X", "shift+right":
		return core.ActionDestroy, false
	case "m":
		return core.ActionCycleTheme, false
	case "p":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// HeldKeys emulates key-up events on top of press-only terminal input.
// Each press refreshes the action's hold window; the action is reported
// as held until the window runs out.
type HeldKeys struct {
	holdTicks int
	remaining map[core.Action]int
}

// NewHeldKeys creates a tracker that holds actions for holdTicks ticks.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldKeys{
		holdTicks: holdTicks,
		remaining: make(map[core.Action]int),
	}
}

// Press marks the action as held for a full window.
func (h *HeldKeys) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	h.remaining[a] = h.holdTicks
}

// Fill writes the currently held actions into frame and ages the windows by one tick.
func (h *HeldKeys) Fill(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Held reports whether the action is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	return h.remaining[a] > 0
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	clear(h.remaining)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
