// internal/state/game_state.go
package state

import (
	"fmt"

	"go-breakout/internal/app"
	"go-breakout/internal/component"
	"go-breakout/internal/config"
	"go-breakout/internal/defs"
	"go-breakout/internal/ui"
	"go-breakout/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	pauseButtonSize = 7
	hudGap          = 12
)

// GameState — состояние игры
type GameState struct {
	sm             *StateMachine
	res            *Resources
	game           *app.Game
	colors         render.ArenaColors
	renderer       *ui.ArenaRenderer
	livesBar       *ui.LivesBar
	levelIndicator *ui.LevelIndicator
	pauseButton    *ui.PauseButton
	tryAgain       *ui.Button
	hudFace        font.Face
	titleFace      font.Face
	maxLevel       int
}

// NewGameState запускает новый раунд на заданном уровне.
func NewGameState(sm *StateMachine, res *Resources, level int) (*GameState, error) {
	g := app.NewGame(res.Seed)
	if res.Sound != nil {
		res.Sound.Subscribe(g.EventDispatcher)
	}
	if err := g.Setup(level); err != nil {
		return nil, fmt.Errorf("new game state: %w", err)
	}

	colors := render.DefaultArenaColors()
	livesBar := ui.NewLivesBar(config.HUDMargin, (config.MenuBarHeight-2*config.LivesCircleRadius)/2)
	levelX := livesBar.X + livesBar.Width(g.MaxLives()) + hudGap

	tryX := float32(config.ApplicationWidth-config.TryAgainWidth) / 2
	tryY := float32(config.MenuBarHeight+config.ArenaHeight/2) + 30

	return &GameState{
		sm:             sm,
		res:            res,
		game:           g,
		colors:         colors,
		renderer:       ui.NewArenaRenderer(config.MenuBarHeight, colors),
		livesBar:       livesBar,
		levelIndicator: ui.NewLevelIndicator(levelX, (config.MenuBarHeight-10)/2),
		pauseButton: ui.NewPauseButton(config.ApplicationWidth-config.HUDMargin-pauseButtonSize, float32(config.MenuBarHeight)/2,
			pauseButtonSize, config.TextLightColor, config.TextLightColor),
		tryAgain:  ui.NewButton(tryX, tryY, config.TryAgainWidth, config.TryAgainHeight, "Try again", res.Fonts.Face(config.ButtonFontSize)),
		hudFace:   res.Fonts.Face(config.HUDFontSize),
		titleFace: res.Fonts.Face(config.TitleFontSize),
		maxLevel:  len(defs.Levels()),
	}, nil
}

// Game возвращает игровую логику раунда
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	x, y := ebiten.CursorPosition()

	if g.game.Stopped() {
		if (clicked && g.tryAgain.Contains(x, y)) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.tryAgain.Press()
			g.sm.SetState(NewMenuState(g.sm, g.res))
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		(clicked && g.pauseButton.IsClicked(x, y)) {
		g.game.TogglePause()
		g.pauseButton.SetPaused(true)
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.MovePaddle(float64(x))
	g.game.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(g.colors.BackgroundColor)
	g.drawMenuBar(screen)
	g.renderer.Draw(screen, g.game)

	if !g.game.Stopped() {
		return
	}

	msg, clr := "You lost!", config.LoseColor
	if g.game.Outcome() == component.Won {
		msg, clr = "You won!", config.WinColor
	}
	ui.DrawCentered(screen, msg, g.titleFace, config.ApplicationWidth/2, config.MenuBarHeight+config.ArenaHeight/2, clr)
	mx, my := ebiten.CursorPosition()
	g.tryAgain.Draw(screen, mx, my)
}

func (g *GameState) drawMenuBar(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ApplicationWidth, config.MenuBarHeight, g.colors.MenuBarColor, false)

	g.livesBar.Draw(screen, g.game.Lives(), g.game.MaxLives())
	g.levelIndicator.Draw(screen, g.game.Level(), g.maxLevel)

	textX := int(g.levelIndicator.X) + g.maxLevel*14 + hudGap
	hud := fmt.Sprintf("Bricks: %d  Score: %d", g.game.BricksLeft(), g.game.Score())
	text.Draw(screen, hud, g.hudFace, textX, config.MenuBarHeight/2+config.HUDFontSize/2-1, g.colors.TextColor)

	g.pauseButton.Draw(screen)
}

func (g *GameState) Exit() {}
