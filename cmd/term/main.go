package main

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"go-breakout/internal/app"
	"go-breakout/internal/audio"
	"go-breakout/internal/component"
	"go-breakout/internal/config"
	"go-breakout/internal/defs"
	"go-breakout/internal/utils"
	"go-breakout/pkg/render"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// grid переводит координаты арены в клетки терминала. Строка 0 занята HUD.
type grid struct {
	width, height int
}

func (g grid) cellW() float64 { return float64(config.ArenaWidth) / float64(g.width) }
func (g grid) cellH() float64 { return float64(config.ArenaHeight) / float64(g.height-1) }

// cells возвращает полуоткрытые диапазоны клеток, покрытых прямоугольником.
// Любой непустой прямоугольник занимает хотя бы одну клетку.
func (g grid) cells(r utils.Rect) (x0, y0, x1, y1 int) {
	x0 = int(r.X / g.cellW())
	x1 = int(r.Right() / g.cellW())
	y0 = int(r.Y/g.cellH()) + 1
	y1 = int(r.Bottom()/g.cellH()) + 1
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// arenaX возвращает x арены для центра столбца.
func (g grid) arenaX(col int) float64 {
	return (float64(col) + 0.5) * g.cellW()
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

type Game struct {
	screen     tcell.Screen
	grid       grid
	game       *app.Game
	level      int
	seed       int64
	sound      *audio.SoundManager
	colors     render.ArenaColors
	lastUpdate time.Time
}

func NewGame(seed int64, level int, sound *audio.SoundManager) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)

	g := &Game{
		screen: screen,
		level:  level,
		seed:   seed,
		sound:  sound,
		colors: render.DefaultArenaColors(),
	}
	g.grid.width, g.grid.height = screen.Size()

	if err := g.restart(); err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

func (g *Game) restart() error {
	next := app.NewGame(g.seed)
	if g.sound != nil {
		g.sound.Subscribe(next.EventDispatcher)
	}
	if err := next.Setup(g.level); err != nil {
		return err
	}
	g.game = next
	g.lastUpdate = time.Now()
	return nil
}

func (g *Game) fill(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	for y := y0; y < y1 && y < g.grid.height; y++ {
		for x := x0; x < x1 && x < g.grid.width; x++ {
			if x >= 0 && y >= 0 {
				g.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}
}

func (g *Game) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		if x+i >= 0 && x+i < g.grid.width {
			g.screen.SetContent(x+i, y, r, nil, style)
		}
	}
}

func (g *Game) draw() {
	bg := toTcell(g.colors.BackgroundColor)
	g.screen.SetStyle(tcell.StyleDefault.Background(bg))
	g.screen.Clear()

	// HUD
	bar := tcell.StyleDefault.Background(toTcell(g.colors.MenuBarColor)).Foreground(toTcell(g.colors.TextColor))
	g.fill(0, 0, g.grid.width, 1, ' ', bar)
	hud := fmt.Sprintf(" Lives: %d/%d  Level %d  Bricks: %d  Score: %d",
		g.game.Lives(), g.game.MaxLives(), g.game.Level(), g.game.BricksLeft(), g.game.Score())
	g.text(0, 0, hud, bar)

	for _, b := range g.game.Bricks() {
		clr := render.BrickColor(b.Brick.Color, b.Brick.Cracked(), b.Flash, g.colors)
		x0, y0, x1, y1 := g.grid.cells(b.Rect)
		g.fill(x0, y0, x1, y1, '█', tcell.StyleDefault.Foreground(toTcell(clr)).Background(bg))
	}
	if paddle, ok := g.game.PaddleRect(); ok {
		x0, y0, x1, y1 := g.grid.cells(paddle)
		g.fill(x0, y0, x1, y1, '▀', tcell.StyleDefault.Foreground(toTcell(g.colors.PaddleColor)).Background(bg))
	}
	if ball, ok := g.game.BallBox(); ok {
		cx, cy := ball.Center()
		clr := g.colors.BallColor
		if g.game.BallWaiting() {
			clr = render.DarkenColor(clr)
		}
		x, y, _, _ := g.grid.cells(utils.NewRect(cx, cy, 0, 0))
		g.screen.SetContent(x, y, '●', nil, tcell.StyleDefault.Foreground(toTcell(clr)).Background(bg))
	}

	mid := g.grid.height / 2
	switch {
	case g.game.Stopped():
		msg, clr := "You lost!", config.LoseColor
		if g.game.Outcome() == component.Won {
			msg, clr = "You won!", config.WinColor
		}
		g.centered(mid, msg, tcell.StyleDefault.Foreground(toTcell(clr)).Background(bg).Bold(true))
		g.centered(mid+2, "R - try again, 1-4 - level, Q - quit", tcell.StyleDefault.Foreground(toTcell(g.colors.TextColor)).Background(bg))
	case g.game.IsPaused():
		g.centered(mid, "PAUSED", tcell.StyleDefault.Foreground(toTcell(g.colors.TextColor)).Background(bg).Bold(true))
	}

	g.screen.Show()
}

func (g *Game) centered(y int, s string, style tcell.Style) {
	g.text((g.grid.width-len([]rune(s)))/2, y, s, style)
}

func (g *Game) selectLevel(level int) {
	prev := g.level
	g.level = level
	if err := g.restart(); err != nil {
		log.Printf("Cannot start level %d: %v", level, err)
		g.level = prev
	}
}

// handleInput возвращает false, когда пора выходить
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch r := ev.Rune(); {
		case r == 'q':
			return false
		case r == 'p':
			g.game.TogglePause()
		case r == 'r':
			g.selectLevel(g.level)
		case r >= '1' && r <= '9':
			g.selectLevel(int(r - '0'))
		}

	case *tcell.EventMouse:
		x, _ := ev.Position()
		g.game.MovePaddle(g.grid.arenaX(x))

	case *tcell.EventResize:
		g.grid.width, g.grid.height = g.screen.Size()
		g.screen.Sync()
	}

	return true
}

func (g *Game) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			g.game.Update(now.Sub(g.lastUpdate).Seconds())
			g.lastUpdate = now
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	if g.sound != nil {
		g.sound.Cleanup()
	}
	g.screen.Fini()
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}
	if settings.LevelsFile != "" {
		if err := defs.LoadLevelDefinitions(settings.LevelsFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load levels: %v\n", err)
			os.Exit(1)
		}
	}

	var sound *audio.SoundManager
	if !settings.Mute {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
			sound = nil
		}
	}

	level := settings.Level
	if level == 0 {
		level = 1
	}

	game, err := NewGame(settings.Seed, level, sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	// Экран занят tcell
	log.SetOutput(io.Discard)

	game.run()
}
