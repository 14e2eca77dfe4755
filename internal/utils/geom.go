package utils

// Rect is an axis-aligned bounding box. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether r and other overlap. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) is inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Overlap returns the penetration depth of r into other along each axis.
// Both values are zero when the rectangles do not intersect.
func (r Rect) Overlap(other Rect) (dx, dy float64) {
	if !r.Intersects(other) {
		return 0, 0
	}
	dx = min(r.Right(), other.Right()) - max(r.X, other.X)
	dy = min(r.Bottom(), other.Bottom()) - max(r.Y, other.Y)
	return dx, dy
}
