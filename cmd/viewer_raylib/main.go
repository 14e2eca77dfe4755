package main

import (
	"fmt"
	"image/color"
	"log"

	"go-breakout/internal/app"
	"go-breakout/internal/audio"
	"go-breakout/internal/component"
	"go-breakout/internal/config"
	"go-breakout/internal/defs"
	"go-breakout/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var levelKeys = []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive, rl.KeySix, rl.KeySeven, rl.KeyEight, rl.KeyNine}

// colorToRL переводит color.RGBA в rl.Color
func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

func newGame(seed int64, level int, sound *audio.SoundManager) (*app.Game, error) {
	g := app.NewGame(seed)
	if sound != nil {
		sound.Subscribe(g.EventDispatcher)
	}
	if err := g.Setup(level); err != nil {
		return nil, err
	}
	return g, nil
}

func drawCenteredText(s string, y, size int32, clr rl.Color) {
	w := rl.MeasureText(s, size)
	rl.DrawText(s, (config.ApplicationWidth-w)/2, y, size, clr)
}

func drawArena(g *app.Game, colors render.ArenaColors) {
	const offsetY = config.MenuBarHeight

	for _, b := range g.Bricks() {
		clr := render.BrickColor(b.Brick.Color, b.Brick.Cracked(), b.Flash, colors)
		rl.DrawRectangle(int32(b.Rect.X), int32(b.Rect.Y)+offsetY, int32(b.Rect.W), int32(b.Rect.H), colorToRL(clr))
	}
	if paddle, ok := g.PaddleRect(); ok {
		rl.DrawRectangle(int32(paddle.X), int32(paddle.Y)+offsetY, int32(paddle.W), int32(paddle.H), colorToRL(colors.PaddleColor))
	}
	if ball, ok := g.BallBox(); ok {
		cx, cy := ball.Center()
		clr := colors.BallColor
		if g.BallWaiting() {
			clr = render.DarkenColor(clr)
		}
		rl.DrawCircle(int32(cx), int32(cy)+offsetY, float32(ball.W/2), colorToRL(clr))
	}
}

func drawMenuBar(g *app.Game, colors render.ArenaColors) {
	rl.DrawRectangle(0, 0, config.ApplicationWidth, config.MenuBarHeight, colorToRL(colors.MenuBarColor))

	r := float32(config.LivesCircleRadius)
	for i := 0; i < g.MaxLives(); i++ {
		clr := config.LifeLostColor
		if i < g.Lives() {
			clr = config.LifeColor
		}
		cx := int32(config.HUDMargin + r + float32(i)*(2*r+config.LivesCircleSpacing))
		rl.DrawCircle(cx, config.MenuBarHeight/2, r, colorToRL(clr))
	}

	hud := fmt.Sprintf("Level %d  Bricks: %d  Score: %d", g.Level(), g.BricksLeft(), g.Score())
	rl.DrawText(hud, 70, (config.MenuBarHeight-config.HUDFontSize)/2, config.HUDFontSize, colorToRL(colors.TextColor))
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

	var sound *audio.SoundManager
	if !settings.Mute {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	level := settings.Level
	if level == 0 {
		level = 1
	}
	g, err := newGame(settings.Seed, level, sound)
	if err != nil {
		log.Fatal(err)
	}

	rl.InitWindow(config.ApplicationWidth, config.ApplicationHeight, "Breakout | 1-4 - Level, P - Pause, R - Restart")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	colors := render.DefaultArenaColors()

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		restart := rl.IsKeyPressed(rl.KeyR)
		for i, def := range defs.Levels() {
			if i < len(levelKeys) && rl.IsKeyPressed(levelKeys[i]) {
				level, restart = def.ID, true
			}
		}
		if restart {
			if next, err := newGame(settings.Seed, level, sound); err != nil {
				log.Printf("Cannot start level %d: %v", level, err)
			} else {
				g = next
			}
		}
		if rl.IsKeyPressed(rl.KeyP) {
			g.TogglePause()
		}

		g.MovePaddle(float64(rl.GetMouseX()))
		g.Update(float64(rl.GetFrameTime()))

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(colorToRL(colors.BackgroundColor))
		drawMenuBar(g, colors)
		drawArena(g, colors)

		midY := int32(config.MenuBarHeight + config.ArenaHeight/2)
		switch {
		case g.Stopped():
			msg, clr := "You lost!", config.LoseColor
			if g.Outcome() == component.Won {
				msg, clr = "You won!", config.WinColor
			}
			drawCenteredText(msg, midY-config.TitleFontSize/2, config.TitleFontSize, colorToRL(clr))
			drawCenteredText("Press R to try again", midY+30, config.ButtonFontSize, colorToRL(colors.TextColor))
		case g.IsPaused():
			rl.DrawRectangle(0, config.MenuBarHeight, config.ArenaWidth, config.ArenaHeight, colorToRL(config.OverlayColor))
			drawCenteredText("PAUSED", midY-config.TitleFontSize/2, config.TitleFontSize, colorToRL(colors.TextColor))
		}
		rl.EndDrawing()
	}
}
