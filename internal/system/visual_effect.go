// internal/system/visual_effect.go
package system

import (
	"go-breakout/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки попаданий.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет таймеры вспышек.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.HitFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.HitFlashes, id)
		}
	}
}
