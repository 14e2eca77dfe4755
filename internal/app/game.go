// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"sort"

	"go-breakout/internal/component"
	"go-breakout/internal/config"
	"go-breakout/internal/defs"
	"go-breakout/internal/entity"
	"go-breakout/internal/event"
	"go-breakout/internal/system"
	"go-breakout/internal/types"
	"go-breakout/internal/utils"
)

const tickEpsilon = 1e-9

// Game holds the main game state and logic. It knows nothing about windows
// or input devices; frontends feed it time and the mouse x position.
type Game struct {
	ECS                *entity.ECS
	MovementSystem     *system.MovementSystem
	CollisionSystem    *system.CollisionSystem
	StateSystem        *system.StateSystem
	PlayerSystem       *system.PlayerSystem
	VisualEffectSystem *system.VisualEffectSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService

	ballID      types.EntityID
	paddleID    types.EntityID
	ready       bool
	accumulator float64
}

// NewGame wires the systems once. Call Setup to start a round.
func NewGame(seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:                ecs,
		EventDispatcher:    eventDispatcher,
		Rng:                rng,
		MovementSystem:     system.NewMovementSystem(ecs, eventDispatcher),
		CollisionSystem:    system.NewCollisionSystem(ecs, eventDispatcher, rng),
		PlayerSystem:       system.NewPlayerSystem(ecs),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
	}

	// PlayerSystem must see LifeLost before StateSystem checks the lives.
	eventDispatcher.SubscribeAll(g.PlayerSystem, event.LifeLost, event.BrickDestroyed)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)

	return g
}

// Setup resets the arena and starts a round at the given level.
func (g *Game) Setup(level int) error {
	multiplier, err := defs.SpeedMultiplier(level)
	if err != nil {
		return fmt.Errorf("setup game: %w", err)
	}

	g.ECS.Reset()
	g.ECS.GameState.Level = level
	g.accumulator = 0

	g.paddleID = g.createPaddle()
	g.createPlayerEntity()
	g.ballID = g.createBall(multiplier)
	g.createBricks()
	g.ready = true

	log.Printf("Level %d started: %d bricks, speed x%.1f", level, g.ECS.GameState.BricksLeft, multiplier)
	return nil
}

// Update advances the simulation by deltaTime seconds in fixed ticks.
func (g *Game) Update(deltaTime float64) {
	if !g.ready || g.ECS.GameState.Paused || g.Stopped() {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.accumulator += deltaTime

	step := config.TickInterval.Seconds()
	// tickEpsilon absorbs float drift so 50ms is exactly 10 ticks.
	for ticks := 0; g.accumulator+tickEpsilon >= step && ticks < config.MaxTicksPerUpdate; ticks++ {
		g.Tick()
		g.accumulator -= step
		if g.Stopped() {
			break
		}
	}
}

// Tick runs one step of the game loop: move the ball, resolve contacts,
// then check for a cleared board.
func (g *Game) Tick() {
	if !g.ready || g.Stopped() {
		return
	}
	g.MovementSystem.Update()
	g.CollisionSystem.Update()
	g.VisualEffectSystem.Update(config.TickInterval.Seconds())
	g.StateSystem.CheckBricks()
	g.ECS.GameTime += config.TickInterval.Seconds()
}

// MovePaddle centers the paddle on x. Ignored once the game is over.
func (g *Game) MovePaddle(x float64) {
	if !g.ready || g.ECS.GameState.Paused || g.Stopped() {
		return
	}
	pos, ok := g.ECS.Positions[g.paddleID]
	paddle, isPaddle := g.ECS.Paddles[g.paddleID]
	if !ok || !isPaddle {
		return
	}
	pos.X = utils.Clamp(x-paddle.Width/2, 0, config.ArenaWidth-paddle.Width)
}

// OnGameOver реализует interfaces.GameContext.
func (g *Game) OnGameOver(won bool) {
	g.accumulator = 0
	if won {
		log.Printf("You won! Score %d", g.Score())
	} else {
		log.Printf("You lost! Score %d, %d bricks left", g.Score(), g.BricksLeft())
	}
}

// TogglePause ставит игру на паузу или снимает с неё
func (g *Game) TogglePause() {
	if g.Stopped() {
		return
	}
	g.ECS.GameState.Paused = !g.ECS.GameState.Paused
	g.accumulator = 0
}

func (g *Game) IsPaused() bool {
	return g.ECS.GameState.Paused
}

// Ready reports whether Setup has been called.
func (g *Game) Ready() bool {
	return g.ready
}

// Stopped reports whether the round has been won or lost.
func (g *Game) Stopped() bool {
	return g.ECS.GameState.Stopped()
}

func (g *Game) Outcome() component.GamePhase {
	return g.ECS.GameState.Phase
}

func (g *Game) Level() int {
	return g.ECS.GameState.Level
}

func (g *Game) BricksLeft() int {
	return g.ECS.GameState.BricksLeft
}

func (g *Game) Lives() int {
	if p := g.ECS.Player(); p != nil {
		return p.Lives
	}
	return 0
}

func (g *Game) MaxLives() int {
	if p := g.ECS.Player(); p != nil {
		return p.MaxLives
	}
	return config.Lives
}

func (g *Game) Score() int {
	if p := g.ECS.Player(); p != nil {
		return p.Score
	}
	return 0
}

// BallBox returns the ball's bounding square.
func (g *Game) BallBox() (utils.Rect, bool) {
	return system.BallBox(g.ECS, g.ballID)
}

// BallWaiting reports whether the ball is waiting to be served.
func (g *Game) BallWaiting() bool {
	ball, ok := g.ECS.Balls[g.ballID]
	return ok && ball.ServeTimer > 0
}

// PaddleRect returns the paddle rectangle.
func (g *Game) PaddleRect() (utils.Rect, bool) {
	return system.EntityRect(g.ECS, g.paddleID)
}

// BrickView is a read-only snapshot of a brick for renderers.
type BrickView struct {
	Rect     utils.Rect
	Row, Col int
	Brick    component.Brick
	Flash    float64 // 0..1
}

// Bricks returns the remaining bricks ordered by row, then column.
func (g *Game) Bricks() []BrickView {
	views := make([]BrickView, 0, len(g.ECS.Bricks))
	for id, brick := range g.ECS.Bricks {
		rect, ok := system.EntityRect(g.ECS, id)
		if !ok {
			continue
		}
		view := BrickView{Rect: rect, Row: brick.Row, Col: brick.Col, Brick: *brick}
		if flash, ok := g.ECS.HitFlashes[id]; ok {
			view.Flash = flash.Intensity()
		}
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].Row != views[j].Row {
			return views[i].Row < views[j].Row
		}
		return views[i].Col < views[j].Col
	})
	return views
}
