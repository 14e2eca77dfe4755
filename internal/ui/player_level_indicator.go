// internal/ui/player_level_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LevelIndicator отображает номер уровня квадратиками.
type LevelIndicator struct {
	X, Y float32
}

const (
	levelRectWidth  = 10
	levelRectHeight = 10
	levelRectGap    = 4
	borderWidth     = 1
)

var (
	levelFillColor = color.RGBA{70, 130, 180, 220}
	borderColor    = color.White
)

// NewLevelIndicator создает новый индикатор уровня.
func NewLevelIndicator(x, y float32) *LevelIndicator {
	return &LevelIndicator{X: x, Y: y}
}

// Draw отрисовывает maxLevel квадратиков, закрашивая первые level.
func (i *LevelIndicator) Draw(screen *ebiten.Image, level, maxLevel int) {
	for j := 0; j < maxLevel; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, i.Y, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < level {
			vector.DrawFilledRect(screen, rectX+borderWidth, i.Y+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, levelFillColor, true)
		}
	}
}
