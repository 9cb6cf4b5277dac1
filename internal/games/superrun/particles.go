package superrun

import (
	"math/rand"

	"github.com/vovakirdan/superrun/internal/core"
)

const (
	particleGravity = 0.5
	particleLife    = 30
)

// Particle is a visual-only debris square.
type Particle struct {
	X, Y    float64 // center
	VX, VY  float64
	Size    float64
	R, G, B uint8
	Life    int
}

// Alpha returns the fading opacity in [0, 1].
func (p Particle) Alpha() float64 {
	return float64(p.Life) / particleLife
}

// Box returns the particle's square in world units.
func (p Particle) Box() core.Box {
	return core.NewBox(p.X-p.Size/2, p.Y-p.Size/2, p.Size, p.Size)
}

// ParticleSystem holds every live particle.
type ParticleSystem struct {
	particles []Particle
}

// Burst emits count particles inside box.
func (ps *ParticleSystem) Burst(rng *rand.Rand, box core.Box, count int) {
	for i := 0; i < count; i++ {
		ps.particles = append(ps.particles, Particle{
			X:    randRange(rng, box.Left, box.Right()),
			Y:    randRange(rng, box.Top, box.Bottom()),
			Size: randRange(rng, 3, 8),
			R:    uint8(randRange(rng, 100, 200)),
			G:    uint8(randRange(rng, 50, 150)),
			B:    uint8(randRange(rng, 0, 50)),
			VX:   rng.Float64()*10 - 5,
			VY:   -10 + rng.Float64()*8,
			Life: particleLife,
		})
	}
}

// Update advances every particle and drops the expired ones.
func (ps *ParticleSystem) Update() {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.VY += particleGravity
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}

// Particles returns the live particles.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Reset removes every particle.
func (ps *ParticleSystem) Reset() {
	ps.particles = ps.particles[:0]
}
