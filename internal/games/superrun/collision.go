package superrun

import "github.com/vovakirdan/superrun/internal/core"

// Outcome classifies a contact between the player and an obstacle.
type Outcome int

const (
	OutcomeNone        Outcome = iota
	OutcomeStomp               // landed on a stompable obstacle
	OutcomeLand                // landed on a platform
	OutcomePassThrough         // side contact while invincible
	OutcomeSideHit             // side contact, costs a life
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeStomp:
		return "stomp"
	case OutcomeLand:
		return "land"
	case OutcomePassThrough:
		return "pass-through"
	case OutcomeSideHit:
		return "side-hit"
	default:
		return "unknown"
	}
}

// Classify decides what a contact between actor and obstacle means.
// A landing requires a non-negative velocity and the actor's bottom
// within tolerance of the obstacle top.
func Classify(a *Actor, o *Obstacle, tolerance float64) Outcome {
	if o.Destroyed || !a.Box.Intersects(o.Box) {
		return OutcomeNone
	}
	landed := a.Vel >= 0 && a.Box.Bottom() <= o.Box.Top+tolerance
	switch {
	case landed && o.Kind.Stompable():
		return OutcomeStomp
	case landed:
		return OutcomeLand
	case a.Invincible:
		return OutcomePassThrough
	default:
		return OutcomeSideHit
	}
}

// resolveObstacles applies every contact outcome for the player this tick.
// At most one side-hit is processed; it reports whether the run was lost.
func (s *Session) resolveObstacles() bool {
	p := s.player
	ph := s.cfg.Physics
	for i := range s.obstacles {
		o := &s.obstacles[i]
		switch Classify(p, o, ph.LandingTolerance) {
		case OutcomeNone:
			continue
		case OutcomeStomp:
			s.destroyObstacle(o)
			s.award(s.cfg.Scoring.StompPoints)
			p.Vel = ph.BounceVelocity
			s.audio.PlayCue(CueStomp)
			s.stats.Stomps++
			s.emit("stomp")
		case OutcomeLand:
			p.Floor = o.Box.Top
			p.Box.SetBottom(o.Box.Top)
			p.Vel = 0
		case OutcomePassThrough:
			s.destroyObstacle(o)
			s.stats.Smashes++
			s.emit("smash")
		case OutcomeSideHit:
			s.destroyObstacle(o)
			s.stats.Hits++
			s.emit("hit")
			if s.economy.LoseLife() {
				s.finish(StateLost)
				return true
			}
			s.logger.Debug("side hit", "lives", s.economy.Lives, "tick", s.tick)
			return false
		}
	}
	return false
}

// collectItems removes every item the player touches and applies its effect.
func (s *Session) collectItems() {
	p := s.player
	kept := s.items[:0]
	for _, it := range s.items {
		if !p.Box.Intersects(it.Box) {
			kept = append(kept, it)
			continue
		}
		s.stats.Pickups++
		switch it.Kind {
		case ItemStar:
			p.ActivateInvincible(s.elapsedMs)
			s.emit("star")
		case ItemLifeBonus:
			s.economy.GainLife()
			s.emit("life_up")
		}
	}
	s.items = kept
}

// DestroyTarget returns the index of the live obstacle with the smallest left
// edge entirely ahead of the runner, or -1.
func DestroyTarget(runner core.Box, obstacles []Obstacle) int {
	best := -1
	for i := range obstacles {
		o := &obstacles[i]
		if o.Destroyed || o.Box.Left <= runner.Right() {
			continue
		}
		if best < 0 || o.Box.Left < obstacles[best].Box.Left {
			best = i
		}
	}
	return best
}

// useDestroy spends a charge on the nearest obstacle ahead, if any.
func (s *Session) useDestroy() {
	if s.economy.Charges <= 0 {
		return
	}
	idx := DestroyTarget(s.player.Box, s.obstacles)
	if idx < 0 || !s.economy.UseCharge() {
		return
	}
	s.destroyObstacle(&s.obstacles[idx])
	s.award(s.cfg.Scoring.BreakPoints)
	s.stats.Breaks++
	s.emit("break")
}

func (s *Session) destroyObstacle(o *Obstacle) {
	o.Destroy(&s.particles, s.rng, s.cfg.Obstacles.Particles)
}
