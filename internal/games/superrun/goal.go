package superrun

import (
	"github.com/vovakirdan/superrun/internal/config"
	"github.com/vovakirdan/superrun/internal/core"
)

// Goal is the finish flag that appears once the goal score is reached.
type Goal struct {
	Box core.Box
}

// NewGoal places the flag centered offset units past the right edge, on the ground.
func NewGoal(cfg config.SuperRunScoring, screenW, groundY float64) *Goal {
	centerX := screenW + cfg.GoalOffset
	return &Goal{
		Box: core.BoxFromBottom(centerX-cfg.GoalWidth/2, groundY, cfg.GoalWidth, cfg.GoalHeight),
	}
}

// Advance scrolls the flag with the world.
func (g *Goal) Advance(speed float64) {
	g.Box.Left -= speed
}

// Reached reports whether the runner has passed the flag's center.
func (g *Goal) Reached(runner core.Box) bool {
	return runner.CenterX() >= g.Box.CenterX()
}
