// internal/component/player.go
package component

// PlayerStateComponent хранит информацию, специфичную для игрока:
// оставшиеся жизни и очки.
type PlayerStateComponent struct {
	Lives    int
	MaxLives int
	Score    int
}

// LoseLife уменьшает число жизней и сообщает, закончилась ли игра.
func (p *PlayerStateComponent) LoseLife() bool {
	if p.Lives > 0 {
		p.Lives--
	}
	return p.IsGameOver()
}

// IsGameOver сообщает, что жизней не осталось.
func (p *PlayerStateComponent) IsGameOver() bool {
	return p.Lives <= 0
}
