package component

import "image/color"

// Brick is one cell of the brick grid.
type Brick struct {
	Row, Col    int
	Strength    int // hits left before the brick is removed
	MaxStrength int
	Color       color.RGBA
}

// Cracked reports whether the brick has been hit but not destroyed.
func (b *Brick) Cracked() bool {
	return b.Strength < b.MaxStrength
}
