// internal/ui/button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-breakout/internal/assets"
	"go-breakout/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную прямоугольную кнопку.
type Button struct {
	X, Y          float32
	Width, Height float32
	Text          string
	BgColor       color.Color
	HoverColor    color.Color
	TextColor     color.Color
	Face          font.Face
	LastClickTime time.Time
}

// NewButton создает новую кнопку.
func NewButton(x, y, width, height float32, label string, face font.Face) *Button {
	return &Button{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Text:       label,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHover,
		TextColor:  config.TextLightColor,
		Face:       face,
	}
}

// Contains проверяет, находится ли точка внутри кнопки.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx < b.X+b.Width && fy >= b.Y && fy < b.Y+b.Height
}

// Press запоминает момент клика для анимации.
func (b *Button) Press() {
	b.LastClickTime = time.Now()
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	inset := float32(3 * math.Exp(-elapsed*8))

	bg := b.BgColor
	if b.Contains(mouseX, mouseY) {
		bg = b.HoverColor
	}
	x, y := b.X+inset, b.Y+inset
	w, h := b.Width-2*inset, b.Height-2*inset
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, float32(config.StrokeWidth), config.ButtonStroke, true)

	textWidth := assets.MeasureString(b.Face, b.Text)
	metrics := b.Face.Metrics()
	textX := int(b.X+b.Width/2) - textWidth/2
	textY := int(b.Y+b.Height/2) + (metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2
	text.Draw(screen, b.Text, b.Face, textX, textY, b.TextColor)
}
