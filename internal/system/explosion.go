// internal/system/explosion.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/types"
	"go-missile-defense/internal/utils"
)

// ExplosionSystem ведёт двухфазную анимацию радиуса (рост до MaxRadius,
// затем спад до нуля) и проверяет живые взрывы на столкновение с
// ракетами. Сбитая ракета порождает цепной взрыв на своей позиции;
// цепные взрывы добавляются после прохода по коллекции и становятся
// опасными со следующего тика.
type ExplosionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewExplosionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ExplosionSystem {
	return &ExplosionSystem{world: world, eventDispatcher: eventDispatcher}
}

// NewExplosion создаёт взрыв нулевого радиуса в фазе роста.
func NewExplosion(w *entity.World, x, y, maxRadius float64) types.EntityID {
	id := w.NewEntity()
	w.Positions[id] = &component.Position{X: x, Y: y}
	w.Explosions[id] = &component.Explosion{MaxRadius: maxRadius, Growing: true}
	return id
}

func (s *ExplosionSystem) Update() {
	w := s.world

	// Фаза анимации радиуса
	var purge []types.EntityID
	for id, ex := range w.Explosions {
		if ex.Growing {
			ex.Radius += config.ExplosionGrowthRate
			if ex.Radius >= ex.MaxRadius {
				ex.Radius = ex.MaxRadius
				ex.Growing = false
			}
		} else {
			ex.Radius -= config.ExplosionDecayRate
			if ex.Radius <= 0 {
				ex.Radius = 0
				ex.Done = true
				purge = append(purge, id)
			}
		}
	}

	// Столкновения: любая ракета внутри живого радиуса уничтожается
	killed := make(map[types.EntityID]component.Position)
	for id, ex := range w.Explosions {
		if ex.Done || ex.Radius <= 0 {
			continue
		}
		pos := w.Positions[id]
		if pos == nil {
			continue
		}
		for rid := range w.Rockets {
			if _, dup := killed[rid]; dup {
				continue
			}
			rpos := w.Positions[rid]
			if rpos == nil {
				continue
			}
			if utils.Distance(rpos.X, rpos.Y, pos.X, pos.Y) <= ex.Radius {
				killed[rid] = *rpos
			}
		}
	}
	for rid, rpos := range killed {
		w.RemoveEntity(rid)
		NewExplosion(w, rpos.X, rpos.Y, config.RocketBlastRadius)
		s.eventDispatcher.Dispatch(event.Event{Type: event.RocketDestroyed, Data: rid})
	}

	// Догоревшие взрывы вычищаются в конце тика
	for _, id := range purge {
		w.RemoveEntity(id)
	}
}
