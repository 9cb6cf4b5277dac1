package superrun

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/superrun/internal/config"
)

func TestSpawnObstacleDeterministic(t *testing.T) {
	cfg := config.DefaultSuperRunConfig().Obstacles

	r1 := rand.New(rand.NewSource(7))
	r2 := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		a := SpawnObstacle(r1, cfg, 1100, 520, 8)
		b := SpawnObstacle(r2, cfg, 1100, 520, 8)
		if a != b {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestSpawnObstacleRanges(t *testing.T) {
	cfg := config.DefaultSuperRunConfig().Obstacles
	rng := rand.New(rand.NewSource(99))
	seen := map[ObstacleKind]bool{}

	for i := 0; i < 500; i++ {
		o := SpawnObstacle(rng, cfg, 1100, 520, 8)
		seen[o.Kind] = true

		if o.Box.H < 60 || o.Box.H > 160 {
			t.Fatalf("height %v out of [60,160]", o.Box.H)
		}
		if o.Box.W < 40 || o.Box.W > 300 {
			t.Fatalf("width %v out of [40,300]", o.Box.W)
		}
		if o.Box.Left < 1100 || o.Box.Left > 1300 {
			t.Fatalf("left %v out of [1100,1300]", o.Box.Left)
		}
		if o.Box.Bottom() != 520 {
			t.Fatalf("bottom %v, want ground 520", o.Box.Bottom())
		}
		if o.Destroyed || o.Speed != 8 {
			t.Fatalf("unexpected initial state %+v", o)
		}
	}
	if len(seen) != 3 {
		t.Errorf("expected all three kinds, saw %v", seen)
	}
}

func TestPlatformIsStretched(t *testing.T) {
	cfg := config.DefaultSuperRunConfig().Obstacles
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		o := SpawnObstacle(rng, cfg, 1100, 520, 8)
		if o.Kind != KindPlatform {
			continue
		}
		// aspect 1.5 stretched x2, clamped at 300
		want := o.Box.H * 1.5 * 2
		if want > 300 {
			want = 300
		}
		if o.Box.W < want-2 || o.Box.W > want {
			t.Fatalf("platform width %v for height %v, want about %v", o.Box.W, o.Box.H, want)
		}
		return
	}
	t.Fatal("no platform spawned")
}

func TestObstacleRemovedOffLeftEdge(t *testing.T) {
	visible := Obstacle{Kind: KindStompableA, Box: boxAt(-40, 400, 50, 120)}
	if !visible.Advance(8, 15) {
		t.Error("obstacle whose right edge stays on screen should survive")
	}

	gone := Obstacle{Kind: KindPlatform, Box: boxAt(-60, 400, 50, 120)}
	if gone.Box.Right() >= 0 {
		t.Fatalf("setup: right = %v, want < 0", gone.Box.Right())
	}
	if gone.Advance(8, 15) {
		t.Error("obstacle with right < 0 must be removed on the next update")
	}
}

func TestDestroyAnimation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var ps ParticleSystem
	o := Obstacle{Kind: KindStompableB, Box: boxAt(500, 400, 80, 120)}

	if !o.Destroy(&ps, rng, 20) {
		t.Fatal("first destroy should succeed")
	}
	if ps.Len() != 20 {
		t.Errorf("particles = %d, want 20", ps.Len())
	}
	if o.Destroy(&ps, rng, 20) {
		t.Error("destroy must be idempotent")
	}
	if ps.Len() != 20 {
		t.Errorf("second destroy emitted particles, now %d", ps.Len())
	}

	left := o.Box.Left
	alive := 0
	for o.Advance(8, 15) {
		alive++
		if o.Box.Left != left {
			t.Fatal("destroyed obstacle must not scroll")
		}
	}
	if alive != 15 {
		t.Errorf("animation lasted %d ticks, want 15", alive)
	}
	if o.Scale(15) != 0 {
		t.Errorf("final scale = %v, want 0", o.Scale(15))
	}
}

func TestParticleBurst(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	var ps ParticleSystem
	box := boxAt(100, 100, 50, 50)
	ps.Burst(rng, box, 20)

	for _, p := range ps.Particles() {
		if p.X < box.Left || p.X > box.Right() || p.Y < box.Top || p.Y > box.Bottom() {
			t.Errorf("particle outside burst box: %+v", p)
		}
		if p.Size < 3 || p.Size > 8 {
			t.Errorf("particle size %v", p.Size)
		}
		if p.VX < -5 || p.VX > 5 || p.VY < -10 || p.VY > -2 {
			t.Errorf("particle velocity %v,%v", p.VX, p.VY)
		}
		if p.R < 100 || p.R > 200 || p.G < 50 || p.G > 150 || p.B > 50 {
			t.Errorf("particle color %d,%d,%d", p.R, p.G, p.B)
		}
	}

	for i := 0; i < 29; i++ {
		ps.Update()
	}
	if ps.Len() != 20 {
		t.Fatalf("particles expired early: %d", ps.Len())
	}
	ps.Update()
	if ps.Len() != 0 {
		t.Errorf("particles should expire after 30 frames, %d left", ps.Len())
	}
}
