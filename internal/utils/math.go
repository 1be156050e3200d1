// internal/utils/math.go
package utils

import "math"

// Distance возвращает евклидово расстояние между двумя точками.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
