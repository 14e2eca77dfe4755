// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-breakout/internal/assets"
	"go-breakout/internal/audio"
	"go-breakout/internal/config"
	"go-breakout/internal/defs"
	"go-breakout/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ApplicationWidth, config.ApplicationHeight
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}
	if settings.LevelsFile != "" {
		if err := defs.LoadLevelDefinitions(settings.LevelsFile); err != nil {
			log.Fatal(err)
		}
	}
	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	res := &state.Resources{
		Fonts: assets.NewFontManager(),
		Seed:  settings.Seed,
	}
	if !settings.Mute {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			res.Sound = sound
			defer sound.Cleanup()
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if settings.Level > 0 {
		gs, err := state.NewGameState(sm, res, settings.Level)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, res))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ApplicationWidth, config.ApplicationHeight)
	ebiten.SetWindowTitle("Breakout")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
