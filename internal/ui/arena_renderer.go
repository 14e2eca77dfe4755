package ui

import (
	"go-breakout/internal/app"
	"go-breakout/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ArenaRenderer draws the bricks, paddle and ball of a running game.
// OffsetY shifts the arena below the top bar.
type ArenaRenderer struct {
	OffsetY float32
	Colors  render.ArenaColors
}

func NewArenaRenderer(offsetY float32, colors render.ArenaColors) *ArenaRenderer {
	return &ArenaRenderer{OffsetY: offsetY, Colors: colors}
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, g *app.Game) {
	for _, b := range g.Bricks() {
		clr := render.BrickColor(b.Brick.Color, b.Brick.Cracked(), b.Flash, r.Colors)
		vector.DrawFilledRect(screen, float32(b.Rect.X), float32(b.Rect.Y)+r.OffsetY, float32(b.Rect.W), float32(b.Rect.H), clr, false)
	}

	if paddle, ok := g.PaddleRect(); ok {
		vector.DrawFilledRect(screen, float32(paddle.X), float32(paddle.Y)+r.OffsetY, float32(paddle.W), float32(paddle.H), r.Colors.PaddleColor, true)
	}

	if ball, ok := g.BallBox(); ok {
		cx, cy := ball.Center()
		clr := r.Colors.BallColor
		if g.BallWaiting() {
			clr = render.DarkenColor(clr)
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy)+r.OffsetY, float32(ball.W/2), clr, true)
	}
}
