// internal/system/movement.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/entity"
	"math"
)

// MovementSystem обновляет позиции ракет и снарядов: каждая сущность
// движется с постоянной скоростью вдоль фиксированного направления
// Start→Target и никогда не сходит с этой оси.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update() {
	for id, r := range s.world.Rockets {
		if pos, ok := s.world.Positions[id]; ok {
			advance(pos, r.Start, r.Target, r.Speed)
		}
	}
	for id, m := range s.world.Missiles {
		if pos, ok := s.world.Positions[id]; ok {
			advance(pos, m.Start, m.Target, m.Speed)
		}
	}
}

// advance сдвигает позицию на speed единиц вдоль направления start→target.
// Вырожденный случай start == target даёт нулевой вектор направления —
// сущность остаётся на месте вместо деления на ноль.
func advance(pos *component.Position, start, target component.Position, speed float64) {
	dx := target.X - start.X
	dy := target.Y - start.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	pos.X += dx / dist * speed
	pos.Y += dy / dist * speed
}
