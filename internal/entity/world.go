// internal/entity/world.go
package entity

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/types"
)

// World — хранилище состояния одного матча. Единственный владелец всех
// коллекций сущностей и счётчиков; при рестарте отбрасывается целиком и
// строится заново. Снаряды и взрывы живут в map'ах с постоянной текучкой,
// постройки создаются один раз и хранятся в срезах — порядок обхода
// детерминирован (важно для выбора турели и пула целей спавнера).
type World struct {
	GameTime      float64
	LastSpawnTime float64
	NextID        types.EntityID
	Score         int
	Phase         component.MatchPhase
	Width         float64
	Height        float64

	Positions   map[types.EntityID]*component.Position
	Rockets     map[types.EntityID]*component.Rocket
	Missiles    map[types.EntityID]*component.Missile
	Explosions  map[types.EntityID]*component.Explosion
	Renderables map[types.EntityID]*component.Renderable

	Cities  []*component.City
	Turrets []*component.Turret
}

// NewWorld создаёт мир с расставленными постройками: турель, три города,
// турель, три города, турель — классическая расстановка вдоль земли.
func NewWorld(width, height float64) *World {
	w := &World{
		NextID:      1,
		Phase:       component.NotStarted,
		Width:       width,
		Height:      height,
		Positions:   make(map[types.EntityID]*component.Position),
		Rockets:     make(map[types.EntityID]*component.Rocket),
		Missiles:    make(map[types.EntityID]*component.Missile),
		Explosions:  make(map[types.EntityID]*component.Explosion),
		Renderables: make(map[types.EntityID]*component.Renderable),
	}

	total := config.NumCities + config.NumTurrets
	slot := width / float64(total+1)
	for i := 0; i < total; i++ {
		x := slot * float64(i+1)
		// Каждый четвёртый слот (0, 4, 8) занимает турель
		if i%4 == 0 {
			w.Turrets = append(w.Turrets, &component.Turret{
				ID:      w.NewEntity(),
				X:       x,
				Ammo:    config.TurretMaxAmmo,
				MaxAmmo: config.TurretMaxAmmo,
				Active:  true,
			})
		} else {
			w.Cities = append(w.Cities, &component.City{
				ID:     w.NewEntity(),
				X:      x,
				Active: true,
			})
		}
	}
	return w
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// GroundY возвращает уровень земли для текущих размеров поля.
func (w *World) GroundY() float64 {
	return w.Height - config.GroundOffset
}

// ActiveInstallations собирает все живые постройки в единый пул целей.
// Города и турели равновероятны — выбор слеп к типу.
func (w *World) ActiveInstallations() []float64 {
	xs := make([]float64, 0, len(w.Cities)+len(w.Turrets))
	for _, c := range w.Cities {
		if c.Active {
			xs = append(xs, c.X)
		}
	}
	for _, t := range w.Turrets {
		if t.Active {
			xs = append(xs, t.X)
		}
	}
	return xs
}

// RemoveEntity убирает сущность из всех коллекций с текучкой.
func (w *World) RemoveEntity(id types.EntityID) {
	delete(w.Positions, id)
	delete(w.Rockets, id)
	delete(w.Missiles, id)
	delete(w.Explosions, id)
	delete(w.Renderables, id)
}
