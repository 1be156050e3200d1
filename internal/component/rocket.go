// internal/component/rocket.go
package component

import "image/color"

// Rocket представляет вражескую ракету, падающую на постройки.
// Текущая позиция хранится отдельно, в World.Positions; инвариант
// движения — точка всегда лежит на луче Start→Target.
type Rocket struct {
	Start  Position
	Target Position
	Speed  float64 // единиц за тик
	Color  color.RGBA
}
