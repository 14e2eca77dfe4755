package ui

import (
	"image/color"

	"go-breakout/internal/assets"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered рисует строку с центром в точке (cx, cy).
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	width := assets.MeasureString(face, s)
	metrics := face.Metrics()
	height := metrics.Ascent.Ceil() - metrics.Descent.Ceil()
	text.Draw(screen, s, face, cx-width/2, cy+height/2, clr)
}
