package system

import (
	"testing"

	"go-breakout/internal/config"
	"go-breakout/internal/event"
)

func TestWallBounces(t *testing.T) {
	tests := []struct {
		name           string
		x, y, dx, dy   float64
		wantDX, wantDY float64
	}{
		{"Left wall", -1, 200, -1, 1, 1, 1},
		{"Right wall", config.ArenaWidth - 19, 200, 1, 1, -1, 1},
		{"Ceiling", 200, -0.5, 1, -1.5, 1, 1.5},
		{"Corner", -1, -1, -1, -1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld()
			w.placeBall(tt.x, tt.y, tt.dx, tt.dy)

			NewCollisionSystem(w.ecs, w.dispatcher, newRng()).Update()

			vel := w.ecs.Velocities[w.ball]
			if vel.DX != tt.wantDX || vel.DY != tt.wantDY {
				t.Errorf("expected velocity (%v, %v), got (%v, %v)", tt.wantDX, tt.wantDY, vel.DX, vel.DY)
			}
			pos := w.ecs.Positions[w.ball]
			if pos.X < 0 || pos.Y < 0 || pos.X+2*config.BallRadius > config.ArenaWidth {
				t.Errorf("ball left the arena: (%v, %v)", pos.X, pos.Y)
			}
			if w.count(event.WallBounce) != 1 {
				t.Errorf("expected one WallBounce, got %d", w.count(event.WallBounce))
			}
		})
	}
}

func TestPaddleBounce(t *testing.T) {
	w := newWorld()
	paddleY := w.ecs.Positions[w.paddle].Y
	w.placeBall(180, paddleY-15, 1, 1.5)

	NewCollisionSystem(w.ecs, w.dispatcher, newRng()).Update()

	vel := w.ecs.Velocities[w.ball]
	if vel.DY >= 0 {
		t.Fatalf("expected ball to move up after paddle, got dy=%v", vel.DY)
	}
	if pos := w.ecs.Positions[w.ball]; pos.Y != paddleY-2*config.BallRadius {
		t.Fatalf("expected ball on top of paddle, got y=%v", pos.Y)
	}
	if w.count(event.PaddleBounce) != 1 {
		t.Fatal("expected PaddleBounce")
	}
}

func TestPaddleIgnoresRisingBall(t *testing.T) {
	w := newWorld()
	paddleY := w.ecs.Positions[w.paddle].Y
	w.placeBall(180, paddleY-15, 1, -1.5)

	NewCollisionSystem(w.ecs, w.dispatcher, newRng()).Update()

	if vel := w.ecs.Velocities[w.ball]; vel.DY != -1.5 {
		t.Fatalf("rising ball should keep its velocity, got dy=%v", vel.DY)
	}
	if w.count(event.PaddleBounce) != 0 {
		t.Fatal("unexpected PaddleBounce")
	}
}

func TestFloorLosesLifeAndServes(t *testing.T) {
	w := newWorld()
	w.placeBall(10, config.ArenaHeight-10, 0.5, 1.5)

	NewCollisionSystem(w.ecs, w.dispatcher, newRng()).Update()

	if w.count(event.LifeLost) != 1 {
		t.Fatal("expected LifeLost")
	}
	ball := w.ecs.Balls[w.ball]
	if ball.ServeTimer != config.ServeDelayTicks {
		t.Fatalf("expected serve delay %d, got %d", config.ServeDelayTicks, ball.ServeTimer)
	}
	pos := w.ecs.Positions[w.ball]
	if pos.X != config.ArenaWidth/2-config.BallRadius || pos.Y != config.ArenaHeight/2-config.BallRadius {
		t.Fatalf("expected ball re-served from center, got (%v, %v)", pos.X, pos.Y)
	}
	vel := w.ecs.Velocities[w.ball]
	if vel.DY != config.BallSpeedY {
		t.Fatalf("expected serve downward, got dy=%v", vel.DY)
	}
	if dx := vel.DX; (dx < config.BallSpeedXMin || dx > config.BallSpeedXMax) && (-dx < config.BallSpeedXMin || -dx > config.BallSpeedXMax) {
		t.Fatalf("serve dx %v out of range", dx)
	}
}

func TestBrickDestroyedFromBelow(t *testing.T) {
	w := newWorld()
	brick := w.addBrick(100, 100, 1)
	// Ball rising into the brick's bottom edge.
	w.placeBall(108, 107, 0.5, -1.5)

	NewCollisionSystem(w.ecs, w.dispatcher, newRng()).Update()

	if _, ok := w.ecs.Bricks[brick]; ok {
		t.Fatal("expected brick to be removed")
	}
	if _, ok := w.ecs.Positions[brick]; ok {
		t.Fatal("expected brick position to be removed")
	}
	if w.ecs.GameState.BricksLeft != 0 {
		t.Fatalf("expected 0 bricks left, got %d", w.ecs.GameState.BricksLeft)
	}
	if vel := w.ecs.Velocities[w.ball]; vel.DY <= 0 {
		t.Fatalf("expected ball to bounce down, got dy=%v", vel.DY)
	}
	if pos := w.ecs.Positions[w.ball]; pos.Y != 108 {
		t.Fatalf("expected ball pushed below brick to y=108, got %v", pos.Y)
	}
	if w.count(event.BrickDestroyed) != 1 {
		t.Fatal("expected BrickDestroyed")
	}
}

func TestBrickSideHitReflectsX(t *testing.T) {
	w := newWorld()
	w.addBrick(100, 100, 1)
	// Ball overlapping the left edge by 1px, vertically spanning the brick.
	w.placeBall(81, 94, 1, 0.5)

	NewCollisionSystem(w.ecs, w.dispatcher, newRng()).Update()

	vel := w.ecs.Velocities[w.ball]
	if vel.DX >= 0 {
		t.Fatalf("expected dx reflected, got %v", vel.DX)
	}
	if vel.DY != 0.5 {
		t.Fatalf("expected dy unchanged, got %v", vel.DY)
	}
}

func TestStrongBrickCracksFirst(t *testing.T) {
	w := newWorld()
	brick := w.addBrick(100, 100, 2)
	w.placeBall(108, 107, 0.5, -1.5)
	s := NewCollisionSystem(w.ecs, w.dispatcher, newRng())

	s.Update()

	b, ok := w.ecs.Bricks[brick]
	if !ok {
		t.Fatal("strong brick removed on first hit")
	}
	if b.Strength != 1 || !b.Cracked() {
		t.Fatalf("expected cracked brick with strength 1, got %+v", b)
	}
	if _, ok := w.ecs.HitFlashes[brick]; !ok {
		t.Fatal("expected hit flash")
	}
	if w.count(event.BrickHit) != 1 || w.count(event.BrickDestroyed) != 0 {
		t.Fatalf("unexpected events: %v", w.events)
	}
	if w.ecs.GameState.BricksLeft != 1 {
		t.Fatalf("cracked brick must still count, got %d", w.ecs.GameState.BricksLeft)
	}

	// Second hit from below destroys it.
	w.placeBall(108, 107, 0.5, -1.5)
	s.Update()
	if _, ok := w.ecs.Bricks[brick]; ok {
		t.Fatal("expected brick destroyed on second hit")
	}
}

func TestOneBrickPerTick(t *testing.T) {
	w := newWorld()
	a := w.addBrick(100, 100, 1)
	b := w.addBrick(140, 100, 1)
	// Ball straddles the gap between both bricks, more over a.
	w.placeBall(122, 104, 0, -1)

	NewCollisionSystem(w.ecs, w.dispatcher, newRng()).Update()

	if _, ok := w.ecs.Bricks[a]; ok {
		t.Fatal("expected the brick with more overlap to be removed")
	}
	if _, ok := w.ecs.Bricks[b]; !ok {
		t.Fatal("only one brick may be hit per tick")
	}
}

func TestServingBallIsIgnored(t *testing.T) {
	w := newWorld()
	w.placeBall(-5, -5, -1, -1)
	w.ecs.Balls[w.ball].ServeTimer = 10

	NewCollisionSystem(w.ecs, w.dispatcher, newRng()).Update()

	if len(w.events) != 0 {
		t.Fatalf("expected no events for a waiting ball, got %v", w.events)
	}
}
