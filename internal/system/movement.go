// internal/system/movement.go
package system

import (
	"go-breakout/internal/entity"
	"go-breakout/internal/event"
)

// MovementSystem сдвигает мячи на их скорость каждый тик
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update() {
	for id, ball := range s.ecs.Balls {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		// Мяч ждёт подачи
		if ball.ServeTimer > 0 {
			ball.ServeTimer--
			if ball.ServeTimer == 0 {
				s.eventDispatcher.Dispatch(event.Event{Type: event.BallServed, Data: id})
			}
			continue
		}

		pos.X += vel.DX * ball.SpeedMultiplier
		pos.Y += vel.DY * ball.SpeedMultiplier
	}
}
