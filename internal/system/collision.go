package system

import (
	"math"

	"go-breakout/internal/component"
	"go-breakout/internal/config"
	"go-breakout/internal/entity"
	"go-breakout/internal/event"
	"go-breakout/internal/types"
	"go-breakout/internal/utils"
)

// BrickFlashDuration is how long a cracked brick flashes, in seconds.
const BrickFlashDuration = 0.15

// CollisionSystem resolves ball contact with the walls, floor, paddle and bricks.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	arena           utils.Rect
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		arena:           utils.NewRect(0, 0, config.ArenaWidth, config.ArenaHeight),
	}
}

// Update checks every ball once. Walls come first, then the floor, then the
// paddle, then at most one brick.
func (s *CollisionSystem) Update() {
	for id, ball := range s.ecs.Balls {
		if ball.ServeTimer > 0 {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		s.bounceWalls(pos, vel, ball.Radius)

		if pos.Y+2*ball.Radius > s.arena.Bottom() {
			s.eventDispatcher.Dispatch(event.Event{Type: event.LifeLost, Data: id})
			if !s.ecs.GameState.Stopped() {
				ServeBall(s.ecs, id, s.rng, config.ServeDelayTicks)
			}
			continue
		}

		box, _ := BallBox(s.ecs, id)
		if s.bouncePaddle(box, pos, vel, ball.Radius) {
			continue
		}

		if brickID, ok := s.findBrick(box); ok {
			s.bounceBrick(box, brickID, pos, vel)
			s.changeBrick(brickID)
		}
	}
}

func (s *CollisionSystem) bounceWalls(pos *component.Position, vel *component.Velocity, radius float64) {
	bounced := false
	if pos.X < s.arena.X {
		pos.X = s.arena.X
		vel.DX = math.Abs(vel.DX)
		bounced = true
	} else if pos.X+2*radius > s.arena.Right() {
		pos.X = s.arena.Right() - 2*radius
		vel.DX = -math.Abs(vel.DX)
		bounced = true
	}
	if pos.Y < s.arena.Y {
		pos.Y = s.arena.Y
		vel.DY = math.Abs(vel.DY)
		bounced = true
	}
	if bounced {
		s.eventDispatcher.Dispatch(event.Event{Type: event.WallBounce})
	}
}

// bouncePaddle sends the ball up when it falls onto a paddle.
func (s *CollisionSystem) bouncePaddle(box utils.Rect, pos *component.Position, vel *component.Velocity, radius float64) bool {
	if vel.DY <= 0 {
		return false
	}
	for id := range s.ecs.Paddles {
		rect, ok := EntityRect(s.ecs, id)
		if !ok || !box.Intersects(rect) {
			continue
		}
		pos.Y = rect.Y - 2*radius
		vel.DY = -math.Abs(vel.DY)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PaddleBounce})
		return true
	}
	return false
}

// findBrick returns the brick the ball overlaps most. Ties go to the lower id
// so the result does not depend on map order.
func (s *CollisionSystem) findBrick(box utils.Rect) (types.EntityID, bool) {
	var (
		best     types.EntityID
		bestArea float64
		found    bool
	)
	for id := range s.ecs.Bricks {
		rect, ok := EntityRect(s.ecs, id)
		if !ok {
			continue
		}
		dx, dy := box.Overlap(rect)
		area := dx * dy
		if area <= 0 {
			continue
		}
		if !found || area > bestArea || (area == bestArea && id < best) {
			best, bestArea, found = id, area, true
		}
	}
	return best, found
}

// bounceBrick reflects the ball along the axis of smaller penetration and
// pushes it out of the brick.
func (s *CollisionSystem) bounceBrick(box utils.Rect, brickID types.EntityID, pos *component.Position, vel *component.Velocity) {
	rect, _ := EntityRect(s.ecs, brickID)
	dx, dy := box.Overlap(rect)
	bx, by := box.Center()
	rx, ry := rect.Center()

	if dx < dy {
		if bx < rx {
			pos.X -= dx
			vel.DX = -math.Abs(vel.DX)
		} else {
			pos.X += dx
			vel.DX = math.Abs(vel.DX)
		}
		return
	}
	if by < ry {
		pos.Y -= dy
		vel.DY = -math.Abs(vel.DY)
	} else {
		pos.Y += dy
		vel.DY = math.Abs(vel.DY)
	}
}

// changeBrick takes one hit off a brick and removes it when nothing is left.
func (s *CollisionSystem) changeBrick(brickID types.EntityID) {
	brick := s.ecs.Bricks[brickID]
	brick.Strength--
	data := event.BrickEvent{Row: brick.Row, Col: brick.Col, Strength: brick.Strength}

	if brick.Strength > 0 {
		s.ecs.HitFlashes[brickID] = &component.HitFlash{Timer: BrickFlashDuration, Duration: BrickFlashDuration}
		s.eventDispatcher.Dispatch(event.Event{Type: event.BrickHit, Data: data})
		return
	}

	s.ecs.RemoveEntity(brickID)
	if s.ecs.GameState.BricksLeft > 0 {
		s.ecs.GameState.BricksLeft--
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.BrickDestroyed, Data: data})
}
