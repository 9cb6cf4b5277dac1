package superrun

import (
	"github.com/vovakirdan/superrun/internal/config"
	"github.com/vovakirdan/superrun/internal/core"
)

// Body is the minimal shape integrated by the shared kinematics:
// a world box, a vertical velocity and the floor the box rests on.
type Body struct {
	Box   core.Box
	Vel   float64
	Floor float64
}

// Actor is a controllable runner: the player or a companion.
type Actor struct {
	Body

	jumpHeld    bool // latch: jump was pressed on the previous tick
	destroyHeld bool // latch: destroy was pressed on the previous tick

	Invincible      bool
	invincibleStart float64 // session ms when the star was picked up
	blinkCounter    int

	DestroyCooldown int // ticks until the destroy action is available again
}

// NewActor creates an actor standing on floor at the given left edge.
func NewActor(left, floor, w, h float64) *Actor {
	return &Actor{
		Body: Body{
			Box:   core.BoxFromBottom(left, floor, w, h),
			Floor: floor,
		},
	}
}

// Advance applies gravity and integrates position, clamping the body to floor.
// The floor is remembered on the body.
func Advance(b *Body, floor float64, ph config.SuperRunPhysics) {
	b.Floor = floor
	b.Vel += ph.Gravity
	b.Box.Top += b.Vel
	if b.Box.Bottom() >= floor {
		b.Box.SetBottom(floor)
		b.Vel = 0
	}
}

// OnGround reports whether the body rests on its floor.
func OnGround(b *Body, ph config.SuperRunPhysics) bool {
	return b.Box.Bottom() >= b.Floor-ph.RestEpsilon
}

// RequestJump starts a jump when pressed is a new press and the actor is grounded.
// The latch is updated on every call, so a held key jumps only once.
func RequestJump(a *Actor, pressed bool, ph config.SuperRunPhysics) bool {
	jumped := false
	if pressed && !a.jumpHeld && OnGround(&a.Body, ph) {
		a.Vel = ph.JumpVelocity
		jumped = true
	}
	a.jumpHeld = pressed
	return jumped
}

// requestDestroy reports whether the destroy action fires this tick.
// A fire starts the cooldown whether or not a charge is available.
func requestDestroy(a *Actor, pressed bool, cooldown int) bool {
	fire := false
	if pressed && !a.destroyHeld && a.DestroyCooldown <= 0 {
		a.DestroyCooldown = cooldown
		fire = true
	}
	a.destroyHeld = pressed
	return fire
}

// tickCooldown counts the destroy cooldown down by one tick.
func tickCooldown(a *Actor) {
	if a.DestroyCooldown > 0 {
		a.DestroyCooldown--
	}
}

// ActivateInvincible starts the invincibility window at nowMs.
func (a *Actor) ActivateInvincible(nowMs float64) {
	a.Invincible = true
	a.invincibleStart = nowMs
	a.blinkCounter = 0
}

// updateInvincible expires the window or advances the blink counter.
func (a *Actor) updateInvincible(nowMs, durationMs float64) {
	if !a.Invincible {
		return
	}
	if nowMs-a.invincibleStart >= durationMs {
		a.Invincible = false
		return
	}
	a.blinkCounter++
}

// InvincibleRemaining returns the milliseconds left on the invincibility window.
func (a *Actor) InvincibleRemaining(nowMs, durationMs float64) float64 {
	if !a.Invincible {
		return 0
	}
	left := durationMs - (nowMs - a.invincibleStart)
	if left < 0 {
		return 0
	}
	return left
}

// Visible reports whether the actor is drawn this tick; invincibility blinks.
func (a *Actor) Visible(blinkFrames int) bool {
	if !a.Invincible {
		return true
	}
	if blinkFrames < 1 {
		blinkFrames = 1
	}
	return (a.blinkCounter/blinkFrames)%2 == 0
}

// Companion is an actor that trails a target at a fixed distance.
type Companion struct {
	*Actor
	Offset float64
}

// Follow eases the companion toward the spot offset units behind target.
// Each axis moves only when its gap exceeds one unit, and the companion
// never ends up below its floor.
func Follow(c *Companion, target *Actor, ease float64) {
	dx := target.Box.Left - c.Offset - c.Box.Left
	if core.AbsF(dx) > 1 {
		c.Box.Left += dx * ease
	}

	dy := target.Box.Bottom() - c.Box.Bottom()
	if core.AbsF(dy) > 1 {
		c.Box.SetBottom(c.Box.Bottom() + dy*ease)
	}

	if c.Box.Bottom() > c.Floor {
		c.Box.SetBottom(c.Floor)
	}
}
