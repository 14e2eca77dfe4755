package component

// Paddle — платформа, которой игрок отбивает мяч
type Paddle struct {
	Width, Height float64
}
