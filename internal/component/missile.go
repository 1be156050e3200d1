// internal/component/missile.go
package component

import "go-missile-defense/internal/types"

// Missile — ракета игрока, летящая к точке клика.
type Missile struct {
	Start    Position
	Target   Position
	Speed    float64        // единиц за тик
	TurretID types.EntityID // турель, из которой был произведён выстрел
}
