// internal/utils/prng.go
package utils

import (
	"image/color"
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go.
// Сид 0 означает "живой" рандом от текущего времени; в тестах передаётся
// фиксированный сид.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseColor выбирает равновероятный цвет из палитры.
func (s *PRNGService) ChooseColor(palette []color.RGBA) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{255, 255, 255, 255}
	}
	return palette[s.rng.Intn(len(palette))]
}
