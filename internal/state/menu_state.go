// internal/state/menu_state.go
package state

import (
	"fmt"
	"log"

	"go-breakout/internal/config"
	"go-breakout/internal/defs"
	"go-breakout/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// MenuState — выбор уровня сложности
type MenuState struct {
	sm        *StateMachine
	res       *Resources
	levels    []defs.LevelDefinition
	buttons   []*ui.Button
	titleFace font.Face
}

func NewMenuState(sm *StateMachine, res *Resources) *MenuState {
	levels := defs.Levels()
	face := res.Fonts.Face(config.ButtonFontSize)

	buttons := make([]*ui.Button, 0, len(levels))
	for i, def := range levels {
		x, y := menuButtonPosition(i)
		buttons = append(buttons, ui.NewButton(x, y, config.MenuButtonWidth, config.MenuButtonHeight,
			fmt.Sprintf("%d. %s", def.ID, def.Name), face))
	}

	return &MenuState{
		sm:        sm,
		res:       res,
		levels:    levels,
		buttons:   buttons,
		titleFace: res.Fonts.Face(config.TitleFontSize),
	}
}

// menuButtonPosition возвращает левый верхний угол i-й кнопки
func menuButtonPosition(i int) (float32, float32) {
	x := float32(config.ApplicationWidth-config.MenuButtonWidth) / 2
	y := float32(config.MenuTop + i*(config.MenuButtonHeight+config.MenuButtonSpacing))
	return x, y
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	for i, def := range m.levels {
		if i < len(digitKeys) && inpututil.IsKeyJustPressed(digitKeys[i]) {
			m.start(def.ID)
			return
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range m.buttons {
			if b.Contains(x, y) {
				b.Press()
				m.start(m.levels[i].ID)
				return
			}
		}
	}
}

func (m *MenuState) start(level int) {
	gs, err := NewGameState(m.sm, m.res, level)
	if err != nil {
		log.Printf("Cannot start level %d: %v", level, err)
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "Breakout", m.titleFace, config.ApplicationWidth/2, config.MenuTop/2, config.TextLightColor)

	mx, my := ebiten.CursorPosition()
	for _, b := range m.buttons {
		b.Draw(screen, mx, my)
	}
}

func (m *MenuState) Exit() {}
