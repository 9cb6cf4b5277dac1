package superrun

import (
	"math"
	"testing"

	"github.com/vovakirdan/superrun/internal/config"
)

func TestAdvanceNeverTunnelsBelowFloor(t *testing.T) {
	ph := config.DefaultSuperRunConfig().Physics

	tests := []struct {
		name  string
		top   float64
		vel   float64
		floor float64
	}{
		{"resting", 460, 0, 520},
		{"fast fall", 300, 80, 520},
		{"platform floor", 350, 40, 400},
		{"already below", 500, 5, 520},
	}

	for _, tt := range tests {
		b := Body{Box: boxAt(200, tt.top, 100, 60), Vel: tt.vel}
		for i := 0; i < 20; i++ {
			Advance(&b, tt.floor, ph)
			if b.Box.Bottom() > tt.floor {
				t.Fatalf("%s: bottom %v below floor %v at tick %d", tt.name, b.Box.Bottom(), tt.floor, i)
			}
		}
		if b.Box.Bottom() != tt.floor || b.Vel != 0 {
			t.Errorf("%s: expected to rest on floor, bottom=%v vel=%v", tt.name, b.Box.Bottom(), b.Vel)
		}
		if b.Floor != tt.floor {
			t.Errorf("%s: floor not stored, got %v", tt.name, b.Floor)
		}
	}
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	ph := config.DefaultSuperRunConfig().Physics
	a := NewActor(200, 520, 100, 60)

	if !RequestJump(a, true, ph) {
		t.Fatal("first press on the ground should jump")
	}
	if a.Vel != ph.JumpVelocity {
		t.Errorf("vel = %v, want %v", a.Vel, ph.JumpVelocity)
	}

	// Land while still holding the key
	for i := 0; i < 60; i++ {
		Advance(&a.Body, 520, ph)
		if RequestJump(a, true, ph) {
			t.Fatalf("held key jumped again at tick %d", i)
		}
	}
	if !OnGround(&a.Body, ph) {
		t.Fatal("actor should have landed")
	}

	RequestJump(a, false, ph)
	if !RequestJump(a, true, ph) {
		t.Error("release then press should jump")
	}
}

func TestJumpRequiresGround(t *testing.T) {
	ph := config.DefaultSuperRunConfig().Physics
	a := NewActor(200, 520, 100, 60)
	a.Box.SetBottom(400)

	if RequestJump(a, true, ph) {
		t.Error("airborne actor must not jump")
	}
}

func TestFollowEasesTowardTarget(t *testing.T) {
	target := NewActor(200, 520, 100, 60)
	c := &Companion{Actor: NewActor(0, 520, 100, 60), Offset: 100}

	Follow(c, target, 0.12)
	// gap 100, eased by 0.12
	if math.Abs(c.Box.Left-12) > 1e-9 {
		t.Errorf("left = %v, want 12", c.Box.Left)
	}

	for i := 0; i < 200; i++ {
		Follow(c, target, 0.12)
	}
	if gap := target.Box.Left - c.Offset - c.Box.Left; gap > 1 || gap < -1 {
		t.Errorf("companion did not settle, gap %v", gap)
	}
}

func TestFollowClampsToFloor(t *testing.T) {
	target := NewActor(200, 520, 100, 60)
	c := &Companion{Actor: NewActor(100, 400, 100, 60), Offset: 100}
	c.Floor = 400

	Follow(c, target, 0.5)
	if c.Box.Bottom() > c.Floor {
		t.Errorf("companion bottom %v below its floor %v", c.Box.Bottom(), c.Floor)
	}
}

func TestInvincibleBlinkAndExpiry(t *testing.T) {
	a := NewActor(200, 520, 100, 60)
	a.ActivateInvincible(1000)

	visible := 0
	for ms := 1000.0; ms < 1000+10*16; ms += 16 {
		a.updateInvincible(ms, 4000)
		if a.Visible(5) {
			visible++
		}
	}
	if visible == 0 || visible == 10 {
		t.Errorf("expected blinking, visible %d of 10 ticks", visible)
	}

	a.updateInvincible(5000, 4000)
	if a.Invincible {
		t.Error("invincibility should expire after 4000 ms")
	}
	if !a.Visible(5) {
		t.Error("actor should be visible after invincibility ends")
	}
}

func TestDestroyCooldown(t *testing.T) {
	a := NewActor(200, 520, 100, 60)
	if !requestDestroy(a, true, 10) {
		t.Fatal("first press should fire")
	}
	requestDestroy(a, false, 10)
	if requestDestroy(a, true, 10) {
		t.Error("press during cooldown must not fire")
	}
	for i := 0; i < 10; i++ {
		tickCooldown(a)
	}
	requestDestroy(a, false, 10)
	if !requestDestroy(a, true, 10) {
		t.Error("press after cooldown should fire")
	}
}
