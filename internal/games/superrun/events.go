package superrun

import (
	"math/rand"

	"github.com/vovakirdan/superrun/internal/config"
)

// Random event names.
const (
	EventSpeedUp   = "speed_up"
	EventSpeedDown = "speed_down"
)

var eventNames = []string{EventSpeedUp, EventSpeedDown}

// RandomEvent is the timed world speed modifier.
type RandomEvent struct {
	cfg      config.SuperRunEvents
	name     string
	modifier float64
	active   bool
	startMs  float64
}

// NewRandomEvent creates an idle event with a neutral modifier.
func NewRandomEvent(cfg config.SuperRunEvents) *RandomEvent {
	return &RandomEvent{cfg: cfg, modifier: 1}
}

// Trigger picks an event uniformly and starts it at nowMs.
func (e *RandomEvent) Trigger(rng *rand.Rand, nowMs float64) string {
	e.Start(eventNames[rng.Intn(len(eventNames))], nowMs)
	return e.name
}

// Start activates the named event. Unknown names reset the modifier.
func (e *RandomEvent) Start(name string, nowMs float64) {
	e.name = name
	e.startMs = nowMs
	e.active = true
	switch name {
	case EventSpeedUp:
		e.modifier = e.cfg.SpeedUp
	case EventSpeedDown:
		e.modifier = e.cfg.SpeedDown
	default:
		e.clear()
	}
}

// Update expires the active event once its duration has passed.
func (e *RandomEvent) Update(nowMs float64) bool {
	if e.active && nowMs-e.startMs > e.cfg.DurationMs {
		e.clear()
		return true
	}
	return false
}

func (e *RandomEvent) clear() {
	e.name = ""
	e.modifier = 1
	e.active = false
}

// Modifier returns the current speed factor (1.0 when idle).
func (e *RandomEvent) Modifier() float64 {
	return e.modifier
}

// Name returns the active event name or "".
func (e *RandomEvent) Name() string {
	return e.name
}

// Active reports whether an event is running.
func (e *RandomEvent) Active() bool {
	return e.active
}
