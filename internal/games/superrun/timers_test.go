package superrun

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/superrun/internal/config"
)

func TestTimerCadence(t *testing.T) {
	timer := NewTimer(1100)
	tick := 1000.0 / 60

	fires := 0
	first := -1
	for i := 1; i <= 600; i++ {
		n := timer.Advance(tick)
		if n > 1 {
			t.Fatalf("timer fired %d times in one tick", n)
		}
		if n == 1 && first < 0 {
			first = i
		}
		fires += n
	}
	if fires != 9 {
		t.Errorf("fires in 10s = %d, want 9", fires)
	}
	if first < 66 || first > 67 {
		t.Errorf("first fire at tick %d, want 66 or 67", first)
	}
}

func TestTimerLargeStep(t *testing.T) {
	timer := NewTimer(1000)
	if n := timer.Advance(3500); n != 3 {
		t.Errorf("fires = %d, want 3", n)
	}
	if n := timer.Advance(500); n != 1 {
		t.Errorf("carry over: fires = %d, want 1", n)
	}
	timer.Reset()
	if n := timer.Advance(999); n != 0 {
		t.Errorf("after reset: fires = %d, want 0", n)
	}
}

func TestRandomEventExpiry(t *testing.T) {
	e := NewRandomEvent(config.DefaultSuperRunConfig().Events)

	e.Start(EventSpeedUp, 1000)
	if e.Modifier() != 1.5 || !e.Active() || e.Name() != EventSpeedUp {
		t.Fatalf("speed_up not active: %v %v %q", e.Modifier(), e.Active(), e.Name())
	}
	if e.Update(11000) {
		t.Error("event ended at exactly 10000 ms")
	}
	if !e.Update(11001) {
		t.Error("event should end after 10000 ms")
	}
	if e.Modifier() != 1 || e.Active() || e.Name() != "" {
		t.Errorf("event not reset: %v %v %q", e.Modifier(), e.Active(), e.Name())
	}

	e.Start(EventSpeedDown, 0)
	if e.Modifier() != 0.8 {
		t.Errorf("speed_down modifier = %v", e.Modifier())
	}
	e.Start("unknown", 0)
	if e.Modifier() != 1 || e.Active() {
		t.Error("unknown event should reset the modifier")
	}
}

func TestRandomEventTriggerChoosesBoth(t *testing.T) {
	e := NewRandomEvent(config.DefaultSuperRunConfig().Events)
	rng := rand.New(rand.NewSource(2))
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[e.Trigger(rng, 0)] = true
	}
	if !seen[EventSpeedUp] || !seen[EventSpeedDown] {
		t.Errorf("events seen: %v", seen)
	}
}

func TestWorldSpeedAfterTenSeconds(t *testing.T) {
	s := NewSession(quietConfig(), 1, 60)
	for i := 0; i < 600; i++ {
		s.Step(input())
	}
	if math.Abs(s.Speed()-8.5) > 1e-6 {
		t.Errorf("speed after 10s = %v, want 8.5", s.Speed())
	}
}

func TestWorldSpeedEventModifier(t *testing.T) {
	s := NewSession(quietConfig(), 1, 60)
	s.event.Start(EventSpeedUp, 0)
	s.Step(input())

	want := s.baseSpeed() * 1.5
	if math.Abs(s.Speed()-want) > 1e-9 {
		t.Errorf("speed = %v, want %v", s.Speed(), want)
	}
}
