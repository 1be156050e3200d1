// internal/system/impact.go
package system

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/types"
	"go-missile-defense/internal/utils"
	"math"
)

// ImpactSystem разрешает попадания: ракеты, достигшие земли, взрываются
// и выводят из строя близкие постройки; снаряды игрока детонируют у
// точки назначения.
type ImpactSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewImpactSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ImpactSystem {
	return &ImpactSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *ImpactSystem) Update() {
	w := s.world

	var landed []types.EntityID
	for id, r := range w.Rockets {
		pos := w.Positions[id]
		if pos == nil {
			landed = append(landed, id)
			continue
		}
		if pos.Y >= r.Target.Y {
			NewExplosion(w, pos.X, pos.Y, config.RocketBlastRadius)
			s.damageInstallations(pos.X)
			s.eventDispatcher.Dispatch(event.Event{Type: event.RocketLanded, Data: id})
			landed = append(landed, id)
		}
	}
	for _, id := range landed {
		w.RemoveEntity(id)
	}

	var arrived []types.EntityID
	for id, m := range w.Missiles {
		pos := w.Positions[id]
		if pos == nil {
			arrived = append(arrived, id)
			continue
		}
		// Точного прибытия не требуется: большая скорость может
		// перелететь точку клика, детонация — у намеченной цели
		if utils.Distance(pos.X, pos.Y, m.Target.X, m.Target.Y) < m.Speed {
			NewExplosion(w, m.Target.X, m.Target.Y, config.MissileBlastRadius)
			s.eventDispatcher.Dispatch(event.Event{Type: event.MissileDetonated, Data: id})
			arrived = append(arrived, id)
		}
	}
	for _, id := range arrived {
		w.RemoveEntity(id)
	}
}

// damageInstallations выводит из строя все постройки в ImpactProximity
// единицах по горизонтали от точки удара. Одно попадание может накрыть
// несколько построек сразу.
func (s *ImpactSystem) damageInstallations(x float64) {
	for _, c := range s.world.Cities {
		if c.Active && math.Abs(c.X-x) <= config.ImpactProximity {
			c.Active = false
			s.eventDispatcher.Dispatch(event.Event{Type: event.InstallationDestroyed, Data: c.ID})
		}
	}
	for _, t := range s.world.Turrets {
		if t.Active && math.Abs(t.X-x) <= config.ImpactProximity {
			t.Active = false
			s.eventDispatcher.Dispatch(event.Event{Type: event.InstallationDestroyed, Data: t.ID})
		}
	}
}
