package superrun

import "github.com/vovakirdan/superrun/internal/core"

// ResolveFloor returns the height the box may rest on this tick: the ground,
// or the highest live platform under it whose top is not above the box's
// bottom by more than tolerance.
func ResolveFloor(box core.Box, obstacles []Obstacle, ground, tolerance float64) float64 {
	floor := ground
	for i := range obstacles {
		o := &obstacles[i]
		if o.Destroyed || o.Kind != KindPlatform {
			continue
		}
		if !box.OverlapsX(o.Box) {
			continue
		}
		if box.Bottom() <= o.Box.Top+tolerance && o.Box.Top < floor {
			floor = o.Box.Top
		}
	}
	return floor
}
