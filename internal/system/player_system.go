// internal/system/player_system.go
package system

import (
	"go-breakout/internal/config"
	"go-breakout/internal/entity"
	"go-breakout/internal/event"
)

// PlayerSystem отвечает за жизни и очки игрока.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS) *PlayerSystem {
	return &PlayerSystem{ecs: ecs}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	playerState := s.ecs.Player()
	if playerState == nil || s.ecs.GameState.Stopped() {
		return
	}

	switch e.Type {
	case event.LifeLost:
		playerState.LoseLife()
	case event.BrickDestroyed:
		playerState.Score += config.BrickPoints
	}
}
