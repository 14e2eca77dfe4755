// component/render.go
package component

import "image/color"

// Shape — форма, которой рисуется сущность
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// Renderable — компонент для отрисовки
type Renderable struct {
	Color  color.RGBA
	Shape  Shape
	Width  float64
	Height float64
}
