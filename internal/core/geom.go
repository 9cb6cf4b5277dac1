// Package core holds the types shared by the simulation and the terminal
// platform: geometry, the cell screen, input frames and runtime state.
// It imports nothing outside the standard library.
package core

// Rect represents an axis-aligned bounding box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Box is an axis-aligned box in world units (Y grows downward).
// World simulation runs on Box; screens use Rect.
type Box struct {
	Left, Top float64
	W, H      float64
}

// NewBox creates a box from its left/top corner and size.
func NewBox(left, top, w, h float64) Box {
	return Box{Left: left, Top: top, W: w, H: h}
}

// BoxFromBottom creates a box whose bottom edge sits at bottom.
func BoxFromBottom(left, bottom, w, h float64) Box {
	return Box{Left: left, Top: bottom - h, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Left + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Top + b.H
}

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 {
	return b.Left + b.W/2
}

// CenterY returns the vertical center.
func (b Box) CenterY() float64 {
	return b.Top + b.H/2
}

// SetBottom moves the box vertically so its bottom edge is at y.
func (b *Box) SetBottom(y float64) {
	b.Top = y - b.H
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b Box) Intersects(other Box) bool {
	if b.Left >= other.Right() || other.Left >= b.Right() {
		return false
	}
	if b.Top >= other.Bottom() || other.Top >= b.Bottom() {
		return false
	}
	return true
}

// OverlapsX reports whether the horizontal extents overlap.
func (b Box) OverlapsX(other Box) bool {
	return b.Right() > other.Left && b.Left < other.Right()
}

// Scaled returns a box of the same center scaled by factor.
func (b Box) Scaled(factor float64) Box {
	w := b.W * factor
	h := b.H * factor
	return Box{Left: b.CenterX() - w/2, Top: b.CenterY() - h/2, W: w, H: h}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
