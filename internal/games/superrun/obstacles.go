package superrun

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/superrun/internal/config"
	"github.com/vovakirdan/superrun/internal/core"
)

// ObstacleKind selects how an obstacle reacts to contact.
type ObstacleKind int

const (
	KindStompableA ObstacleKind = iota
	KindStompableB
	KindPlatform

	kindCount = 3
)

// String returns the kind name used in logs and tests.
func (k ObstacleKind) String() string {
	switch k {
	case KindStompableA:
		return "stompable-a"
	case KindStompableB:
		return "stompable-b"
	case KindPlatform:
		return "platform"
	default:
		return "unknown"
	}
}

// Stompable reports whether landing on the obstacle destroys it.
func (k ObstacleKind) Stompable() bool {
	return k == KindStompableA || k == KindStompableB
}

// Obstacle is a ground object scrolling toward the player.
type Obstacle struct {
	Kind         ObstacleKind
	Box          core.Box
	Speed        float64 // world speed when spawned
	Destroyed    bool
	DestroyTimer int
}

// randRange returns a uniform integer in [lo, hi] as float64.
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	l, h := int(lo), int(hi)
	if h <= l {
		return float64(l)
	}
	return float64(l + rng.Intn(h-l+1))
}

// SpawnObstacle creates an obstacle just off the right edge.
// The result depends only on the rng state and the arguments.
func SpawnObstacle(rng *rand.Rand, cfg config.SuperRunObstacles, screenW, groundY, speed float64) Obstacle {
	kind := ObstacleKind(rng.Intn(kindCount))

	h := randRange(rng, cfg.MinHeight, cfg.MaxHeight)
	aspect := 1.0
	if int(kind) < len(cfg.Aspects) {
		aspect = cfg.Aspects[kind]
	}
	w := math.Floor(h * aspect)
	if kind == KindPlatform {
		w = math.Floor(w * cfg.PlatformStretch)
	}
	w = core.ClampF(w, cfg.MinWidth, cfg.MaxWidth)

	left := screenW + randRange(rng, 0, cfg.SpawnJitter)

	return Obstacle{
		Kind:  kind,
		Box:   core.BoxFromBottom(left, groundY, w, h),
		Speed: speed,
	}
}

// Advance moves the obstacle one tick and reports whether it is still alive.
// Live obstacles scroll left and die once fully past the left edge;
// destroyed ones stay in place while the shrink animation runs.
func (o *Obstacle) Advance(speed float64, destroyFrames int) bool {
	if !o.Destroyed {
		o.Box.Left -= speed
		return o.Box.Right() >= 0
	}
	o.DestroyTimer++
	return o.DestroyTimer <= destroyFrames
}

// Scale returns the draw scale of the shrink animation.
func (o *Obstacle) Scale(destroyFrames int) float64 {
	if !o.Destroyed {
		return 1
	}
	if destroyFrames < 1 {
		return 0
	}
	return math.Max(0, 1-float64(o.DestroyTimer)/float64(destroyFrames))
}

// Destroy marks the obstacle destroyed and emits a particle burst.
// Calling it on a destroyed obstacle does nothing.
func (o *Obstacle) Destroy(ps *ParticleSystem, rng *rand.Rand, count int) bool {
	if o.Destroyed {
		return false
	}
	o.Destroyed = true
	o.DestroyTimer = 0
	if ps != nil {
		ps.Burst(rng, o.Box, count)
	}
	return true
}
