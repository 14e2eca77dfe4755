package system

import (
	"go-breakout/internal/component"
	"go-breakout/internal/config"
	"go-breakout/internal/entity"
	"go-breakout/internal/event"
	"go-breakout/internal/types"
	"go-breakout/internal/utils"
)

type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	events     []event.Event
	ball       types.EntityID
	paddle     types.EntityID
}

func newWorld() *world {
	w := &world{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
	}
	w.dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) { w.events = append(w.events, e) }),
		event.WallBounce, event.PaddleBounce, event.BrickHit, event.BrickDestroyed,
		event.LifeLost, event.BallServed, event.GameWon, event.GameLost)

	player := w.ecs.NewEntity()
	w.ecs.PlayerState[player] = &component.PlayerStateComponent{Lives: config.Lives, MaxLives: config.Lives}

	w.ball = w.ecs.NewEntity()
	w.ecs.Balls[w.ball] = &component.Ball{Radius: config.BallRadius, SpeedMultiplier: 1}
	w.ecs.Positions[w.ball] = &component.Position{}
	w.ecs.Velocities[w.ball] = &component.Velocity{}

	w.paddle = w.ecs.NewEntity()
	w.ecs.Paddles[w.paddle] = &component.Paddle{Width: config.PaddleWidth, Height: config.PaddleHeight}
	w.ecs.Positions[w.paddle] = &component.Position{X: 160, Y: config.ArenaHeight - config.PaddleYOffset}
	w.ecs.Renderables[w.paddle] = &component.Renderable{Width: config.PaddleWidth, Height: config.PaddleHeight}
	return w
}

func (w *world) placeBall(x, y, dx, dy float64) {
	w.ecs.Positions[w.ball].X = x
	w.ecs.Positions[w.ball].Y = y
	w.ecs.Velocities[w.ball].DX = dx
	w.ecs.Velocities[w.ball].DY = dy
}

func (w *world) addBrick(x, y float64, strength int) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Bricks[id] = &component.Brick{Strength: strength, MaxStrength: strength}
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Renderables[id] = &component.Renderable{Width: config.BrickWidth, Height: config.BrickHeight}
	w.ecs.GameState.BricksLeft++
	return id
}

func (w *world) count(t event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newRng() *utils.PRNGService {
	return utils.NewPRNGService(1)
}
