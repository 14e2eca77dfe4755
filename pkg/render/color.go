// pkg/render/color.go
package render

import (
	"image/color"

	"go-breakout/internal/config"
)

// ArenaColors holds all the color definitions needed to render the arena.
type ArenaColors struct {
	BackgroundColor color.RGBA
	MenuBarColor    color.RGBA
	PaddleColor     color.RGBA
	BallColor       color.RGBA
	TextColor       color.RGBA
	FlashColor      color.RGBA
}

// DefaultArenaColors returns the palette from config.
func DefaultArenaColors() ArenaColors {
	return ArenaColors{
		BackgroundColor: config.BackgroundColor,
		MenuBarColor:    config.MenuBarColor,
		PaddleColor:     config.PaddleColor,
		BallColor:       config.BallColor,
		TextColor:       config.TextLightColor,
		FlashColor:      color.RGBA{255, 255, 255, 255},
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LerpColor blends from a toward b by t in [0, 1].
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// BrickColor returns the fill for a brick: darker once cracked, blended
// toward the flash color while the hit flash is active.
func BrickColor(base color.RGBA, cracked bool, flash float64, palette ArenaColors) color.RGBA {
	c := base
	if cracked {
		c = DarkenColor(c)
	}
	return LerpColor(c, palette.FlashColor, flash)
}
