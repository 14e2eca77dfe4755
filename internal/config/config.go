// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	// Размер окна приложения; высота включает 25px верхнего меню
	ApplicationWidth  = 400
	ApplicationHeight = 625
	MenuBarHeight     = 25

	// Размеры игрового поля
	ArenaWidth  = ApplicationWidth
	ArenaHeight = ApplicationHeight - MenuBarHeight

	PaddleWidth   = 80
	PaddleHeight  = 10
	PaddleYOffset = 30 // Отступ платформы от нижнего края

	BricksPerRow = 10
	BrickRows    = 10
	BrickSep     = 4
	BrickWidth   = (ArenaWidth - (BricksPerRow-1)*BrickSep) / BricksPerRow
	BrickHeight  = 8
	BrickYOffset = 70 // Отступ верхнего ряда кирпичей
	RowsPerBand  = 2  // Рядов одного цвета
	StrongBands  = 2  // Сколько верхних цветовых полос требуют двух попаданий
	BrickPoints  = 10

	BallRadius = 10

	Lives = 3

	// Скорость мяча задаётся в пикселях за тик
	BallSpeedY    = 1.5
	BallSpeedXMin = 0.5
	BallSpeedXMax = 1.5

	ServeDelayTicks = 200 // Пауза перед подачей после потери жизни (1 секунда)

	MaxDeltaTime      = 0.06
	MaxTicksPerUpdate = 20
)

// TickInterval — длительность одного шага симуляции
const TickInterval = 5 * time.Millisecond

// HUD
const (
	HUDMargin          = 8
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 4.0

	TitleFontSize  = 36
	ButtonFontSize = 18
	HUDFontSize    = 12

	TryAgainWidth  = 100
	TryAgainHeight = 40

	MenuButtonWidth   = 200
	MenuButtonHeight  = 44
	MenuButtonSpacing = 16
	MenuTop           = 180
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	MenuBarColor    = color.RGBA{35, 35, 50, 255}
	PaddleColor     = color.RGBA{230, 230, 240, 255}
	BallColor       = color.RGBA{240, 240, 240, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	ButtonHover     = color.RGBA{100, 160, 210, 240}
	ButtonStroke    = color.RGBA{240, 240, 240, 255}
	LifeColor       = color.RGBA{220, 60, 60, 255}
	LifeLostColor   = color.RGBA{0, 0, 0, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	WinColor        = color.RGBA{50, 205, 50, 255}
	LoseColor       = color.RGBA{220, 60, 60, 255}
	StrokeWidth     = 2.0

	// Цвета полос кирпичей сверху вниз, по два ряда на цвет
	BrickColors = []color.RGBA{
		{255, 50, 50, 255},  // Red
		{255, 140, 0, 255},  // Orange
		{255, 215, 0, 255},  // Yellow
		{50, 205, 50, 255},  // Green
		{0, 200, 220, 255},  // Cyan
	}
)
