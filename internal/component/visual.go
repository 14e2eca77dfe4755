// internal/component/visual.go
package component

// HitFlash указывает, что кирпич должен быть отрисован вспышкой после попадания.
type HitFlash struct {
	Timer    float64 // Сколько времени эффекта осталось, в секундах
	Duration float64 // Общая продолжительность эффекта
}

// Intensity возвращает силу вспышки от 1 (только что) до 0 (погасла).
func (f *HitFlash) Intensity() float64 {
	if f.Duration <= 0 || f.Timer <= 0 {
		return 0
	}
	return f.Timer / f.Duration
}
