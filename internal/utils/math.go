// internal/utils/math.go
package utils

// Clamp ограничивает значение диапазоном [min, max]
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
