package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/superrun/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyShiftRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{" ", core.ActionJump, false},
		{"up", core.ActionJumpAlt, false},
		{"w", core.ActionJumpAlt, false},
		{"x", core.ActionDestroy, false},
		{"shift+right", core.ActionDestroy, false},
		{"m", core.ActionCycleTheme, false},
		{"p", core.ActionPause, false},
		{"q", core.ActionQuit, true},
		{"esc", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"z", core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tt.key))
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, want %v", tt.key, action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, want %v", tt.key, quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"j", MenuActionDown},
		{"h", MenuActionLeft},
		{"l", MenuActionRight},
		{"enter", MenuActionSelect},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"z", MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.ActionJump)

	for tick := 0; tick < 3; tick++ {
		frame := core.NewInputFrame()
		h.Fill(&frame)
		if !frame.Has(core.ActionJump) {
			t.Fatalf("tick %d: expected jump held", tick)
		}
	}

	frame := core.NewInputFrame()
	h.Fill(&frame)
	if frame.Has(core.ActionJump) {
		t.Error("expected jump released after hold window")
	}
}

func TestHeldKeysRepeatRefreshes(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(core.ActionDestroy)

	frame := core.NewInputFrame()
	h.Fill(&frame)

	// Auto-repeat press arrives before the window runs out
	h.Press(core.ActionDestroy)
	for tick := 0; tick < 2; tick++ {
		frame = core.NewInputFrame()
		h.Fill(&frame)
		if !frame.Has(core.ActionDestroy) {
			t.Fatalf("tick %d: expected destroy still held", tick)
		}
	}
	if h.Held(core.ActionDestroy) {
		t.Error("expected destroy released")
	}
}

func TestHeldKeysIgnoresNoneAndRelease(t *testing.T) {
	h := NewHeldKeys(0)
	h.Press(core.ActionNone)
	h.Press(core.ActionPause)

	if h.Held(core.ActionNone) {
		t.Error("ActionNone must never be held")
	}
	if !h.Held(core.ActionPause) {
		t.Error("expected pause held")
	}

	h.Release()
	frame := core.NewInputFrame()
	h.Fill(&frame)
	if frame.Any(core.ActionPause, core.ActionNone) {
		t.Error("expected nothing held after Release")
	}
}
