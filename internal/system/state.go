package system

import (
	"log"

	"go-breakout/internal/component"
	"go-breakout/internal/entity"
	"go-breakout/internal/event"
	"go-breakout/internal/interfaces"
)

// StateSystem переводит партию в Won или Lost. Должна подписываться
// после PlayerSystem, чтобы видеть уже уменьшенное число жизней.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.SubscribeAll(ss, event.LifeLost, event.BrickDestroyed)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if s.ecs.GameState.Stopped() {
		return
	}
	switch e.Type {
	case event.LifeLost:
		if player := s.ecs.Player(); player != nil && player.IsGameOver() {
			s.finish(false)
		}
	case event.BrickDestroyed:
		s.CheckBricks()
	}
}

// CheckBricks завершает партию победой, если кирпичей не осталось
func (s *StateSystem) CheckBricks() {
	if !s.ecs.GameState.Stopped() && s.ecs.GameState.BricksLeft == 0 {
		s.finish(true)
	}
}

func (s *StateSystem) finish(won bool) {
	if won {
		s.ecs.GameState.Phase = component.Won
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameWon})
	} else {
		s.ecs.GameState.Phase = component.Lost
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameLost})
	}
	log.Printf("Game over at level %d: %s", s.ecs.GameState.Level, s.ecs.GameState.Phase)
	if s.gameContext != nil {
		s.gameContext.OnGameOver(won)
	}
}

func (s *StateSystem) Current() component.GamePhase {
	return s.ecs.GameState.Phase
}
