// component/movement.go
package component

// Position — компонент позиции (левый верхний угол ограничивающего прямоугольника)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости в пикселях за тик
type Velocity struct {
	DX, DY float64
}
