package component

// GamePhase — фаза партии
type GamePhase int

const (
	Playing GamePhase = iota
	Won
	Lost
)

func (p GamePhase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// GameState — компонент для хранения состояния партии
type GameState struct {
	Phase      GamePhase
	Level      int
	BricksLeft int
	Paused     bool
}

// Stopped сообщает, закончена ли партия
func (s *GameState) Stopped() bool {
	return s.Phase != Playing
}
