package core

// Action is a semantic input the simulation understands. The platform maps
// physical keys to actions, so games never see key codes.
type Action uint8

const (
	ActionNone       Action = iota
	ActionJump              // Space
	ActionJumpAlt           // Up, W
	ActionDestroy           // X, Shift+Right: break the nearest obstacle ahead
	ActionCycleTheme        // M: next floor tile theme
	ActionPause             // P
	ActionQuit              // Esc, Q, Ctrl+C
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Jump", "JumpAlt", "Destroy", "CycleTheme", "Pause", "Quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions held during one tick.
// It is a plain value: copies are independent and frames compare with ==.
type InputFrame struct {
	held uint16
}

// NewInputFrame returns an empty frame. The zero value is also empty.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as held. ActionNone and out-of-range actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.held |= 1 << a
}

// Has reports whether a is held.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.held&(1<<a) != 0
}

// Any reports whether at least one of actions is held.
func (f InputFrame) Any(actions ...Action) bool {
	for _, a := range actions {
		if f.Has(a) {
			return true
		}
	}
	return false
}

// Empty reports whether nothing is held.
func (f InputFrame) Empty() bool {
	return f.held == 0
}

// Clear releases every action.
func (f *InputFrame) Clear() {
	f.held = 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
