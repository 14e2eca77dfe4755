// internal/ui/player_health_indicator.go
package ui

import (
	"go-breakout/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LivesBar отображает оставшиеся жизни в виде ряда кружков.
type LivesBar struct {
	X, Y float32
}

// NewLivesBar создает новый индикатор жизней.
func NewLivesBar(x, y float32) *LivesBar {
	return &LivesBar{X: x, Y: y}
}

// Draw рисует кружок на каждую жизнь, потерянные чёрным.
func (i *LivesBar) Draw(screen *ebiten.Image, lives, maxLives int) {
	r := float32(config.LivesCircleRadius)
	step := 2*r + float32(config.LivesCircleSpacing)

	for j := 0; j < maxLives; j++ {
		cx := i.X + r + float32(j)*step
		cy := i.Y + r

		clr := config.LifeLostColor
		if j < lives {
			clr = config.LifeColor
		}
		vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
		vector.StrokeCircle(screen, cx, cy, r, 1, config.ButtonStroke, true)
	}
}

// Width возвращает общую ширину индикатора.
func (i *LivesBar) Width(maxLives int) float32 {
	if maxLives <= 0 {
		return 0
	}
	r := float32(config.LivesCircleRadius)
	return float32(maxLives)*2*r + float32(maxLives-1)*float32(config.LivesCircleSpacing)
}
