package entity

import (
	"go-breakout/internal/component"
	"go-breakout/internal/types"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Renderables map[types.EntityID]*component.Renderable
	Balls       map[types.EntityID]*component.Ball
	Paddles     map[types.EntityID]*component.Paddle
	Bricks      map[types.EntityID]*component.Brick
	HitFlashes  map[types.EntityID]*component.HitFlash
	PlayerState map[types.EntityID]*component.PlayerStateComponent
	GameState   *component.GameState
}

func NewECS() *ECS {
	ecs := &ECS{}
	ecs.Reset()
	return ecs
}

// Reset очищает все хранилища и начинает новую партию
func (ecs *ECS) Reset() {
	*ecs = ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Balls:       make(map[types.EntityID]*component.Ball),
		Paddles:     make(map[types.EntityID]*component.Paddle),
		Bricks:      make(map[types.EntityID]*component.Brick),
		HitFlashes:  make(map[types.EntityID]*component.HitFlash),
		PlayerState: make(map[types.EntityID]*component.PlayerStateComponent),
		GameState: &component.GameState{
			Phase: component.Playing,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех хранилищ компонентов
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Renderables, id)
	delete(ecs.Balls, id)
	delete(ecs.Paddles, id)
	delete(ecs.Bricks, id)
	delete(ecs.HitFlashes, id)
	delete(ecs.PlayerState, id)
}

// Player возвращает состояние единственного игрока, если оно создано
func (ecs *ECS) Player() *component.PlayerStateComponent {
	for _, p := range ecs.PlayerState {
		return p
	}
	return nil
}
