package superrun

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/superrun/internal/config"
	"github.com/vovakirdan/superrun/internal/core"
)

// State is the session state machine position.
type State int

const (
	StateRunning State = iota
	StateWon
	StateLost
	StateExiting
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run is over.
func (s State) Terminal() bool {
	return s != StateRunning
}

// FloorThemes is the number of floor tile themes cycled with the theme key.
const FloorThemes = 4

// Stats counts notable actions during a run.
type Stats struct {
	Jumps   int
	Stomps  int
	Breaks  int
	Smashes int
	Pickups int
	Hits    int
}

// Session is one run of the game: it owns the player, every entity
// collection and the economy, and advances them one fixed tick at a time.
type Session struct {
	cfg        config.SuperRunConfig
	rng        *rand.Rand
	audio      Audio
	logger     *log.Logger
	ramp       config.SpeedRamp
	tickMs     float64

	tick      int
	elapsedMs float64
	speed     float64
	state     State
	result    State // how the run ended; Running until it does
	endMs     float64 // elapsed time when the run ended
	exitMs    float64 // time spent in a terminal state
	paused    bool

	pauseHeld bool
	themeHeld bool

	player     *Actor
	companions []*Companion
	obstacles  []Obstacle
	items      []Item
	particles  ParticleSystem
	goal       *Goal
	economy    *Economy
	event      *RandomEvent
	timers     sessionTimers

	theme       int
	bgOffset    float64
	floorOffset float64

	stats  Stats
	events []string
}

// NewSession creates a running session. tickRate is the number of ticks per
// simulated second; every Step advances time by 1000/tickRate ms.
func NewSession(cfg config.SuperRunConfig, seed int64, tickRate int) *Session {
	if tickRate <= 0 {
		tickRate = 60
	}
	s := &Session{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		audio:      nopAudio{},
		logger:     log.New(io.Discard),
		ramp:       config.NewSpeedRamp(cfg.Difficulty, cfg.World.BaseSpeed, cfg.World.Acceleration),
		tickMs:     1000 / float64(tickRate),
		player:     NewActor(cfg.Player.X, cfg.World.GroundY, cfg.Player.Width, cfg.Player.Height),
		economy:    NewEconomy(cfg.Scoring, cfg.Player.Lives),
		event:      NewRandomEvent(cfg.Events),
		timers: sessionTimers{
			obstacle: NewTimer(cfg.Timers.ObstacleMs),
			bonus:    NewTimer(cfg.Timers.BonusMs),
			star:     NewTimer(cfg.Timers.StarMs),
			event:    NewTimer(cfg.Timers.EventMs),
		},
	}
	s.speed = s.baseSpeed()
	return s
}

// SetAudio attaches an audio backend. nil detaches it.
func (s *Session) SetAudio(a Audio) {
	if a == nil {
		a = nopAudio{}
	}
	s.audio = a
}

// SetLogger attaches a logger. nil discards output.
func (s *Session) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	s.logger = l
}

// Step advances the session by one tick and returns the events it produced.
func (s *Session) Step(in core.InputFrame) []string {
	s.events = s.events[:0]

	if in.Has(core.ActionQuit) {
		if s.state != StateExiting {
			s.logger.Info("quit requested", "state", s.state, "score", s.economy.Score)
			s.state = StateExiting
		}
		return s.events
	}

	switch s.state {
	case StateExiting:
		return s.events
	case StateWon, StateLost:
		s.exitMs += s.tickMs
		if s.exitMs >= s.cfg.Session.ExitDelayMs {
			s.state = StateExiting
			s.emit("exit")
		}
		return s.events
	}

	pause := in.Has(core.ActionPause)
	if pause && !s.pauseHeld {
		s.paused = !s.paused
	}
	s.pauseHeld = pause

	theme := in.Has(core.ActionCycleTheme)
	if theme && !s.themeHeld {
		s.theme = (s.theme + 1) % FloorThemes
	}
	s.themeHeld = theme

	if s.paused {
		return s.events
	}

	s.tick++
	s.elapsedMs += s.tickMs

	s.fireTimers()

	if s.event.Update(s.elapsedMs) {
		s.logger.Debug("event ended", "tick", s.tick)
	}
	s.speed = s.baseSpeed() * s.event.Modifier()

	s.bgOffset -= s.speed
	s.floorOffset -= s.speed
	s.advanceEntities()

	jump := in.Any(core.ActionJump, core.ActionJumpAlt)
	if s.updatePlayer(jump, in.Has(core.ActionDestroy)) {
		s.useDestroy()
	}
	s.collectItems()

	if s.resolveObstacles() {
		return s.events
	}

	s.economy.RaiseTo(s.economy.TimeScore(s.elapsedMs))

	s.updateCompanions(jump)
	s.updateGoal()

	return s.events
}

// baseSpeed is the world speed before the random event modifier.
func (s *Session) baseSpeed() float64 {
	return s.ramp.At(s.elapsedMs / 1000)
}

// fireTimers runs the periodic spawns whose interval has elapsed.
func (s *Session) fireTimers() {
	w, g := s.cfg.World.Width, s.cfg.World.GroundY

	for n := s.timers.obstacle.Advance(s.tickMs); n > 0; n-- {
		s.obstacles = append(s.obstacles, SpawnObstacle(s.rng, s.cfg.Obstacles, w, g, s.speed))
	}
	for n := s.timers.bonus.Advance(s.tickMs); n > 0; n-- {
		if it, ok := SpawnLifeBonus(s.rng, s.cfg.Items, w, g, s.speed); ok {
			s.items = append(s.items, it)
		}
	}
	for n := s.timers.star.Advance(s.tickMs); n > 0; n-- {
		s.items = append(s.items, Item{
			Kind:  ItemStar,
			Box:   PlaceStar(s.rng, s.cfg.Items, w, g, s.obstacles),
			Speed: s.speed,
		})
	}
	for n := s.timers.event.Advance(s.tickMs); n > 0; n-- {
		name := s.event.Trigger(s.rng, s.elapsedMs)
		s.logger.Info("random event", "event", name, "tick", s.tick)
		s.emit(name)
	}
}

// advanceEntities scrolls obstacles, items and particles and drops the dead ones.
func (s *Session) advanceEntities() {
	frames := s.cfg.Obstacles.DestroyFrames
	alive := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Advance(s.speed, frames) {
			alive = append(alive, o)
		}
	}
	s.obstacles = alive

	kept := s.items[:0]
	for _, it := range s.items {
		if it.Advance(s.speed) {
			kept = append(kept, it)
		}
	}
	s.items = kept

	s.particles.Update()
}

// updatePlayer resolves the floor, applies input and kinematics, and reports
// whether the destroy action fired.
func (s *Session) updatePlayer(jump, destroy bool) bool {
	p := s.player
	ph := s.cfg.Physics

	floor := ResolveFloor(p.Box, s.obstacles, s.cfg.World.GroundY, ph.SupportTolerance)
	p.Floor = floor
	if RequestJump(p, jump, ph) {
		s.audio.PlayCue(CueJump)
		s.stats.Jumps++
		s.emit("jump")
	}
	fire := requestDestroy(p, destroy, s.cfg.Player.DestroyCooldown)
	Advance(&p.Body, floor, ph)
	tickCooldown(p)
	p.updateInvincible(s.elapsedMs, s.cfg.Items.StarDurationMs)
	return fire
}

// updateCompanions unlocks companions at their thresholds and moves them.
func (s *Session) updateCompanions(jump bool) {
	cc := s.cfg.Companions
	for len(s.companions) < s.economy.CompanionsUnlocked(cc.Thresholds) {
		offset := cc.FollowDistance * float64(len(s.companions)+1)
		c := &Companion{
			Actor:  NewActor(s.player.Box.Left-offset, s.cfg.World.GroundY, s.cfg.Player.Width, s.cfg.Player.Height),
			Offset: offset,
		}
		s.companions = append(s.companions, c)
		s.logger.Info("companion unlocked", "count", len(s.companions), "score", s.economy.Score)
		s.emit("companion")
	}

	ph := s.cfg.Physics
	for _, c := range s.companions {
		floor := ResolveFloor(c.Box, s.obstacles, s.cfg.World.GroundY, ph.SupportTolerance)
		c.Floor = floor
		RequestJump(c.Actor, jump, ph)
		Advance(&c.Body, floor, ph)
		Follow(c, s.player, cc.Ease)
	}
}

// updateGoal spawns the flag at the goal score, scrolls it and checks for a win.
func (s *Session) updateGoal() {
	if s.goal == nil && s.economy.Score >= s.cfg.Scoring.GoalScore {
		s.goal = NewGoal(s.cfg.Scoring, s.cfg.World.Width, s.cfg.World.GroundY)
		s.logger.Info("goal spawned", "score", s.economy.Score, "tick", s.tick)
		s.emit("goal")
	}
	if s.goal == nil {
		return
	}
	s.goal.Advance(s.speed)
	if s.goal.Reached(s.player.Box) {
		s.finish(StateWon)
	}
}

// finish moves the session into a terminal state.
func (s *Session) finish(state State) {
	s.state = state
	s.result = state
	s.endMs = s.elapsedMs
	s.exitMs = 0
	s.audio.FadeMusic(time.Duration(s.cfg.Session.MusicFadeMs) * time.Millisecond)
	if state == StateLost {
		s.audio.PlayCue(CueGameOver)
	}
	s.logger.Info("run finished", "state", state, "score", s.economy.Score, "elapsed_ms", s.endMs)
	s.emit(state.String())
}

// award adds points and logs any charges earned.
func (s *Session) award(points int) {
	if gained := s.economy.Add(points); gained > 0 {
		s.logger.Debug("charges earned", "gained", gained, "charges", s.economy.Charges)
	}
}

func (s *Session) emit(event string) {
	s.events = append(s.events, event)
}

// State returns the state machine position.
func (s *Session) State() State { return s.state }

// Result returns StateWon or StateLost once the run has ended, else StateRunning.
func (s *Session) Result() State { return s.result }

// Paused reports whether the simulation is paused.
func (s *Session) Paused() bool { return s.paused }

// Score returns the current score.
func (s *Session) Score() int { return s.economy.Score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.economy.Lives }

// Charges returns the destruction charges available.
func (s *Session) Charges() int { return s.economy.Charges }

// Speed returns the current world speed.
func (s *Session) Speed() float64 { return s.speed }

// Tick returns the number of simulated ticks.
func (s *Session) Tick() int { return s.tick }

// Elapsed returns the simulated run time. It stops when the run ends.
func (s *Session) Elapsed() time.Duration {
	return time.Duration(s.elapsedMs * float64(time.Millisecond))
}

// Theme returns the floor tile theme index.
func (s *Session) Theme() int { return s.theme }

// Player returns the player actor.
func (s *Session) Player() *Actor { return s.player }

// Companions returns the unlocked companions.
func (s *Session) Companions() []*Companion { return s.companions }

// Obstacles returns the obstacles on the field.
func (s *Session) Obstacles() []Obstacle { return s.obstacles }

// Items returns the items on the field.
func (s *Session) Items() []Item { return s.items }

// Goal returns the goal flag or nil before it spawns.
func (s *Session) Goal() *Goal { return s.goal }

// Event returns the random event state.
func (s *Session) Event() *RandomEvent { return s.event }

// Stats returns the run counters.
func (s *Session) Stats() Stats { return s.stats }
