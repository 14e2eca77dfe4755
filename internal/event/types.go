// internal/event/types.go
package event

const (
	WallBounce     EventType = "WallBounce"     // Отскок от стены или потолка
	PaddleBounce   EventType = "PaddleBounce"   // Отскок от платформы
	BrickHit       EventType = "BrickHit"       // Кирпич треснул, но уцелел
	BrickDestroyed EventType = "BrickDestroyed" // Кирпич разрушен
	LifeLost       EventType = "LifeLost"       // Мяч упал на пол
	BallServed     EventType = "BallServed"     // Мяч снова в игре
	GameWon        EventType = "GameWon"        // Кирпичей не осталось
	GameLost       EventType = "GameLost"       // Жизней не осталось
)

// BrickEvent — данные событий BrickHit и BrickDestroyed
type BrickEvent struct {
	Row, Col int
	Strength int // Оставшаяся прочность
}
