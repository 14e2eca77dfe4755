// internal/state/pause_state.go
package state

import (
	"go-breakout/internal/config"
	"go-breakout/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	sm            *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		sm:            sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.previousState.pauseButton.IsClicked(x, y) {
			unpause = true
		}
	}

	if unpause {
		// При выходе из паузы «отжимаем» кнопку в самом игровом состоянии
		s.previousState.game.TogglePause()
		s.previousState.pauseButton.SetPaused(false)
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, config.MenuBarHeight, config.ArenaWidth, config.ArenaHeight, config.OverlayColor, false)
	ui.DrawCentered(screen, "PAUSED", s.previousState.titleFace, config.ApplicationWidth/2,
		config.MenuBarHeight+config.ArenaHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
