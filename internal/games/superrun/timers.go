package superrun

// Timer is a periodic trigger driven by simulated time.
// It accumulates the time since its last fire and is checked once per tick.
type Timer struct {
	IntervalMs float64
	sinceMs    float64
}

// NewTimer creates a timer firing every intervalMs.
func NewTimer(intervalMs float64) *Timer {
	return &Timer{IntervalMs: intervalMs}
}

// Advance adds dtMs and returns how many times the timer fired.
// Leftover time carries over so the cadence does not drift.
func (t *Timer) Advance(dtMs float64) int {
	if t.IntervalMs <= 0 {
		return 0
	}
	t.sinceMs += dtMs
	fired := 0
	for t.sinceMs >= t.IntervalMs {
		t.sinceMs -= t.IntervalMs
		fired++
	}
	return fired
}

// Reset clears the accumulated time.
func (t *Timer) Reset() {
	t.sinceMs = 0
}

// sessionTimers groups the four spawn and event triggers.
type sessionTimers struct {
	obstacle *Timer
	bonus    *Timer
	star     *Timer
	event    *Timer
}
