package superrun

import (
	"github.com/vovakirdan/superrun/internal/core"
)

// SpriteID names a drawable image.
type SpriteID int

const (
	SpritePlayer SpriteID = iota
	SpriteCompanion
	SpriteStompableA
	SpriteStompableB
	SpritePlatform
	SpriteStar
	SpriteLifeBonus
	SpriteGoal
	SpriteParticle
)

// DrawCmd places one sprite in world coordinates.
type DrawCmd struct {
	Sprite  SpriteID
	Box     core.Box
	Scale   float64    // 1 is full size; drawn centered on Box
	Alpha   float64    // opacity in [0, 1]
	Visible bool       // false while blinking out
	Tint    core.Color // particles only
}

// HUD is the scalar state shown on top of the world.
type HUD struct {
	Score        int
	Lives        int
	Charges      int
	Event        string
	InvincibleMs float64
	ElapsedMs    float64
	EndMs        float64
	ExitInMs     float64
	State        State
	Paused       bool
}

// Frame is everything the presentation layer needs for one tick.
type Frame struct {
	Commands         []DrawCmd
	BackgroundOffset float64
	FloorOffset      float64
	Theme            int
	HUD              HUD
}

var obstacleSprites = [kindCount]SpriteID{SpriteStompableA, SpriteStompableB, SpritePlatform}

// Frame builds the draw list. Terminal states are drawn frozen.
func (s *Session) Frame() Frame {
	f := Frame{
		BackgroundOffset: s.bgOffset,
		FloorOffset:      s.floorOffset,
		Theme:            s.theme,
		HUD:              s.hud(),
	}
	blink := s.cfg.Items.BlinkFrames

	// Draw order: items, particles, runners, obstacles, goal.
	for _, it := range s.items {
		sprite := SpriteStar
		if it.Kind == ItemLifeBonus {
			sprite = SpriteLifeBonus
		}
		f.Commands = append(f.Commands, solid(sprite, it.Box))
	}
	for _, p := range s.particles.Particles() {
		f.Commands = append(f.Commands, DrawCmd{
			Sprite:  SpriteParticle,
			Box:     p.Box(),
			Scale:   1,
			Alpha:   p.Alpha(),
			Visible: true,
			Tint:    core.RGB(p.R, p.G, p.B),
		})
	}

	player := solid(SpritePlayer, s.player.Box)
	player.Visible = s.player.Visible(blink)
	f.Commands = append(f.Commands, player)
	for _, c := range s.companions {
		cmd := solid(SpriteCompanion, c.Box)
		cmd.Visible = c.Visible(blink)
		f.Commands = append(f.Commands, cmd)
	}

	frames := s.cfg.Obstacles.DestroyFrames
	for i := range s.obstacles {
		o := &s.obstacles[i]
		cmd := solid(obstacleSprites[o.Kind], o.Box)
		cmd.Scale = o.Scale(frames)
		cmd.Visible = cmd.Scale > 0
		f.Commands = append(f.Commands, cmd)
	}

	if s.goal != nil {
		f.Commands = append(f.Commands, solid(SpriteGoal, s.goal.Box))
	}
	return f
}

func solid(sprite SpriteID, box core.Box) DrawCmd {
	return DrawCmd{Sprite: sprite, Box: box, Scale: 1, Alpha: 1, Visible: true}
}

func (s *Session) hud() HUD {
	h := HUD{
		Score:        s.economy.Score,
		Lives:        s.economy.Lives,
		Charges:      s.economy.Charges,
		Event:        s.event.Name(),
		InvincibleMs: s.player.InvincibleRemaining(s.elapsedMs, s.cfg.Items.StarDurationMs),
		ElapsedMs:    s.elapsedMs,
		State:        s.state,
		Paused:       s.paused,
	}
	if s.state.Terminal() {
		h.EndMs = s.endMs
		h.ExitInMs = s.cfg.Session.ExitDelayMs - s.exitMs
		if h.ExitInMs < 0 {
			h.ExitInMs = 0
		}
	}
	return h
}
