// internal/interfaces/game_context.go
package interfaces

// GameContext — то, что системам нужно от Game.
type GameContext interface {
	// OnGameOver вызывается один раз, когда партия выиграна или проиграна
	OnGameOver(won bool)
}
