// internal/system/render.go
package system

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности. Только читает состояние мира,
// никогда его не мутирует.
type RenderSystem struct {
	world *entity.World
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	w := s.world
	groundY := float32(w.GroundY())

	// Земля
	vector.DrawFilledRect(screen, 0, groundY, float32(w.Width), float32(config.GroundOffset), config.GroundColor, true)

	// Постройки: разрушенные рисуются приплюснутыми руинами
	for _, c := range w.Cities {
		if c.Active {
			vector.DrawFilledRect(screen, float32(c.X-config.CityHalfWidth), groundY-18, config.CityHalfWidth*2, 18, config.CityColor, true)
		} else {
			vector.DrawFilledRect(screen, float32(c.X-config.CityHalfWidth), groundY-5, config.CityHalfWidth*2, 5, config.RuinColor, true)
		}
	}
	for _, t := range w.Turrets {
		if t.Active {
			vector.DrawFilledRect(screen, float32(t.X-config.TurretHalfWidth), groundY-14, config.TurretHalfWidth*2, 14, config.TurretColor, true)
			vector.DrawFilledCircle(screen, float32(t.X), groundY-14, 6, config.TurretColor, true)
		} else {
			vector.DrawFilledRect(screen, float32(t.X-config.TurretHalfWidth), groundY-5, config.TurretHalfWidth*2, 5, config.RuinColor, true)
		}
	}

	// Следы снарядов: линия от точки старта до текущей позиции
	for id, r := range w.Rockets {
		if pos, ok := w.Positions[id]; ok {
			trail := r.Color
			trail.A = 90
			vector.StrokeLine(screen, float32(r.Start.X), float32(r.Start.Y), float32(pos.X), float32(pos.Y), 1.5, trail, true)
		}
	}
	for id, m := range w.Missiles {
		if pos, ok := w.Positions[id]; ok {
			trail := config.MissileColor
			trail.A = 90
			vector.StrokeLine(screen, float32(m.Start.X), float32(m.Start.Y), float32(pos.X), float32(pos.Y), 1.5, trail, true)
		}
	}

	// Головы снарядов
	for id, render := range w.Renderables {
		if pos, ok := w.Positions[id]; ok {
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, render.Color, true)
		}
	}

	// Взрывы — полупрозрачные круги текущего радиуса
	for id, ex := range w.Explosions {
		if pos, ok := w.Positions[id]; ok && ex.Radius > 0 {
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(ex.Radius), config.ExplosionColor, true)
		}
	}
}
