package app

import (
	"go-breakout/internal/component"
	"go-breakout/internal/config"
	"go-breakout/internal/system"
	"go-breakout/internal/types"
)

func (g *Game) createPaddle() types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Paddles[id] = &component.Paddle{Width: config.PaddleWidth, Height: config.PaddleHeight}
	g.ECS.Positions[id] = &component.Position{
		X: (config.ArenaWidth - config.PaddleWidth) / 2,
		Y: config.ArenaHeight - config.PaddleYOffset,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  config.PaddleColor,
		Shape:  component.ShapeRect,
		Width:  config.PaddleWidth,
		Height: config.PaddleHeight,
	}
	return id
}

func (g *Game) createPlayerEntity() types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.PlayerState[id] = &component.PlayerStateComponent{
		Lives:    config.Lives,
		MaxLives: config.Lives,
	}
	return id
}

func (g *Game) createBall(speedMultiplier float64) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Balls[id] = &component.Ball{Radius: config.BallRadius, SpeedMultiplier: speedMultiplier}
	g.ECS.Positions[id] = &component.Position{}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  config.BallColor,
		Shape:  component.ShapeCircle,
		Width:  2 * config.BallRadius,
		Height: 2 * config.BallRadius,
	}
	system.ServeBall(g.ECS, id, g.Rng, config.ServeDelayTicks)
	return id
}

// createBricks lays out the brick grid centered horizontally. Rows come in
// color bands; the top StrongBands bands take two hits.
func (g *Game) createBricks() {
	rowWidth := config.BricksPerRow*config.BrickWidth + (config.BricksPerRow-1)*config.BrickSep
	startX := float64(config.ArenaWidth-rowWidth) / 2

	for row := 0; row < config.BrickRows; row++ {
		band := (row / config.RowsPerBand) % len(config.BrickColors)
		strength := 1
		if band < config.StrongBands {
			strength = 2
		}
		y := float64(config.BrickYOffset + row*(config.BrickHeight+config.BrickSep))

		for col := 0; col < config.BricksPerRow; col++ {
			id := g.ECS.NewEntity()
			g.ECS.Bricks[id] = &component.Brick{
				Row:         row,
				Col:         col,
				Strength:    strength,
				MaxStrength: strength,
				Color:       config.BrickColors[band],
			}
			g.ECS.Positions[id] = &component.Position{
				X: startX + float64(col*(config.BrickWidth+config.BrickSep)),
				Y: y,
			}
			g.ECS.Renderables[id] = &component.Renderable{
				Color:  config.BrickColors[band],
				Shape:  component.ShapeRect,
				Width:  config.BrickWidth,
				Height: config.BrickHeight,
			}
			g.ECS.GameState.BricksLeft++
		}
	}
}
