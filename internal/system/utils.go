// internal/system/utils.go
package system

import (
	"go-breakout/internal/config"
	"go-breakout/internal/entity"
	"go-breakout/internal/types"
	"go-breakout/internal/utils"
)

// ServeBall ставит мяч в центр поля и задаёт случайное направление вниз.
// Мяч начинает движение через delay тиков.
func ServeBall(ecs *entity.ECS, ballID types.EntityID, rng *utils.PRNGService, delay int) {
	ball, ok := ecs.Balls[ballID]
	if !ok {
		return
	}
	pos, hasPos := ecs.Positions[ballID]
	vel, hasVel := ecs.Velocities[ballID]
	if !hasPos || !hasVel {
		return
	}

	pos.X = float64(config.ArenaWidth)/2 - ball.Radius
	pos.Y = float64(config.ArenaHeight)/2 - ball.Radius
	vel.DX = rng.RangeFloat(config.BallSpeedXMin, config.BallSpeedXMax) * rng.Sign()
	vel.DY = config.BallSpeedY
	ball.ServeTimer = delay
}

// BallBox возвращает ограничивающий квадрат мяча
func BallBox(ecs *entity.ECS, ballID types.EntityID) (utils.Rect, bool) {
	ball, ok := ecs.Balls[ballID]
	pos, hasPos := ecs.Positions[ballID]
	if !ok || !hasPos {
		return utils.Rect{}, false
	}
	return utils.NewRect(pos.X, pos.Y, 2*ball.Radius, 2*ball.Radius), true
}

// EntityRect возвращает прямоугольник сущности по позиции и размерам отрисовки
func EntityRect(ecs *entity.ECS, id types.EntityID) (utils.Rect, bool) {
	pos, hasPos := ecs.Positions[id]
	r, hasRender := ecs.Renderables[id]
	if !hasPos || !hasRender {
		return utils.Rect{}, false
	}
	return utils.NewRect(pos.X, pos.Y, r.Width, r.Height), true
}
