package superrun

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/superrun/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '█'
	CompanionChar = '▓'
	StompAChar    = '▒'
	StompBChar    = '▒'
	PlatformChar  = '▤'
	StarChar      = '★'
	LifeChar      = '♥'
	GoalPoleChar  = '│'
	GoalFlagChar  = '▶'
	ParticleChar  = '•'
	FadedChar     = '·'
	HillChar      = '░'
	TileChar      = '█'
	TileEdgeChar  = '▌'
	TileTopChar   = '▀'
)

const (
	floorTile     = 40.0 // world units per floor tile
	floorEdge     = 3.0  // tile border width
	bgStretch     = 1.5  // background image width relative to the world width
	particleFaded = 0.35 // particles below this alpha use the faded glyph
)

// floorTheme is a floor tile palette.
type floorTheme struct {
	main, edge, top core.Color
}

var floorThemes = [FloorThemes]floorTheme{
	{main: core.ColorBrown, edge: core.ColorDarkGray, top: core.ColorYellow},
	{main: core.ColorGreen, edge: core.ColorDarkGray, top: core.ColorYellow},
	{main: core.ColorRed, edge: core.ColorDarkGray, top: core.ColorYellow},
	{main: core.ColorPurple, edge: core.ColorDarkGray, top: core.ColorYellow},
}

type spriteStyle struct {
	glyph rune
	color core.Color
}

var spriteStyles = map[SpriteID]spriteStyle{
	SpritePlayer:     {PlayerChar, core.ColorBrightCyan},
	SpriteCompanion:  {CompanionChar, core.ColorCyan},
	SpriteStompableA: {StompAChar, core.ColorOrange},
	SpriteStompableB: {StompBChar, core.ColorMagenta},
	SpritePlatform:   {PlatformChar, core.ColorBrightGreen},
	SpriteStar:       {StarChar, core.ColorBrightYellow},
	SpriteLifeBonus:  {LifeChar, core.ColorBrightRed},
	SpriteGoal:       {GoalFlagChar, core.ColorBrightWhite},
	SpriteParticle:   {ParticleChar, core.ColorOrange},
}

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy  float64
	groundY float64
	worldW  float64
}

func (s *Session) viewport(dst *core.Screen) viewport {
	return viewport{
		sx:      float64(dst.Width()) / s.cfg.World.Width,
		sy:      float64(dst.Height()) / s.cfg.World.Height,
		groundY: s.cfg.World.GroundY,
		worldW:  s.cfg.World.Width,
	}
}

// rect converts a world box into the cells it covers; never empty.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.Left * v.sx))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y0 := int(math.Floor(b.Top * v.sy))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// worldX returns the world x at the center of screen column cx.
func (v viewport) worldX(cx int) float64 {
	return (float64(cx) + 0.5) / v.sx
}

// worldY returns the world y at the center of screen row cy.
func (v viewport) worldY(cy int) float64 {
	return (float64(cy) + 0.5) / v.sy
}

// Render draws the current frame to the screen.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	f := s.Frame()
	v := s.viewport(dst)

	drawBackground(dst, v, f.BackgroundOffset)
	drawFloor(dst, v, f.FloorOffset, f.Theme)
	for _, cmd := range f.Commands {
		drawSprite(dst, v, cmd)
	}
	s.drawHUD(dst, f.HUD)

	switch {
	case f.HUD.State == StateWon:
		drawCenteredMessage(dst, "GOAL!!",
			fmt.Sprintf("Time: %.2f s  |  closing in %ds", f.HUD.EndMs/1000, secondsLeft(f.HUD.ExitInMs)))
	case f.HUD.State == StateLost:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  closing in %ds", f.HUD.Score, secondsLeft(f.HUD.ExitInMs)))
	case f.HUD.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func secondsLeft(ms float64) int {
	return int(math.Ceil(ms / 1000))
}

// hillHeight is the skyline profile of the background image at u world units.
func hillHeight(u, groundY float64) float64 {
	return groundY * (0.30 + 0.10*math.Sin(u/90) + 0.06*math.Sin(u/37+1.3))
}

// drawBackground scrolls the background image A and its mirror B as A|B|A|B.
func drawBackground(dst *core.Screen, v viewport, offset float64) {
	w := v.worldW * bgStretch
	pair := w * 2
	for cx := 0; cx < dst.Width(); cx++ {
		pos := math.Mod(v.worldX(cx)-offset, pair)
		if pos < 0 {
			pos += pair
		}
		u := pos
		if pos >= w {
			u = pair - pos // mirrored half
		}
		top := v.groundY - hillHeight(u, v.groundY)
		for cy := 0; cy < dst.Height(); cy++ {
			y := v.worldY(cy)
			if y >= v.groundY {
				break
			}
			if y >= top {
				dst.SetColored(cx, cy, HillChar, core.ColorDarkGray)
			}
		}
	}
}

// drawFloor fills everything below the ground line with scrolling tiles.
func drawFloor(dst *core.Screen, v viewport, offset float64, theme int) {
	t := floorThemes[((theme%FloorThemes)+FloorThemes)%FloorThemes]
	firstRow := -1
	for cy := 0; cy < dst.Height(); cy++ {
		if v.worldY(cy) < v.groundY {
			continue
		}
		if firstRow < 0 {
			firstRow = cy
		}
		for cx := 0; cx < dst.Width(); cx++ {
			pos := math.Mod(v.worldX(cx)-offset, floorTile)
			if pos < 0 {
				pos += floorTile
			}
			switch {
			case pos < floorEdge:
				dst.SetColored(cx, cy, TileEdgeChar, t.edge)
			case cy == firstRow:
				dst.SetColored(cx, cy, TileTopChar, t.top)
			default:
				dst.SetColored(cx, cy, TileChar, t.main)
			}
		}
	}
}

// drawSprite fills the cells covered by a draw command.
func drawSprite(dst *core.Screen, v viewport, cmd DrawCmd) {
	if !cmd.Visible || cmd.Scale <= 0 || cmd.Alpha <= 0 {
		return
	}
	style, ok := spriteStyles[cmd.Sprite]
	if !ok {
		return
	}
	r := v.rect(cmd.Box.Scaled(cmd.Scale))

	switch cmd.Sprite {
	case SpriteParticle:
		glyph := style.glyph
		if cmd.Alpha < particleFaded {
			glyph = FadedChar
		}
		x, y := r.Center()
		dst.SetColored(x, y, glyph, cmd.Tint)
	case SpriteStar, SpriteLifeBonus:
		x, y := r.Center()
		dst.SetColored(x, y, style.glyph, style.color)
	case SpriteGoal:
		dst.FillRect(core.NewRect(r.X, r.Y, 1, r.H), GoalPoleChar, core.ColorWhite)
		dst.SetColored(r.X+1, r.Y, style.glyph, core.ColorBrightRed)
	default:
		dst.FillRect(r, style.glyph, style.color)
	}
}

// drawHUD writes score, charges, lives, the random event and the star timer.
func (s *Session) drawHUD(dst *core.Screen, h HUD) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" SCORE: %d ", h.Score), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, fmt.Sprintf(" CHARGES: %d  (X to destroy) ", h.Charges), core.ColorBrightRed)
	dst.DrawTextColored(1, 2, " LIFE: "+strings.Repeat(string(LifeChar), h.Lives)+" ", core.ColorRed)

	if h.Event != "" {
		text := fmt.Sprintf(" EVENT: %s ", h.Event)
		dst.DrawTextColored((dst.Width()-len(text))/2, 0, text, core.ColorBrightCyan)
	}
	if h.InvincibleMs > 0 {
		text := fmt.Sprintf(" STAR: %.1fs ", h.InvincibleMs/1000)
		dst.DrawTextColored(dst.Width()-len(text)-1, 0, text, core.ColorBrightYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
