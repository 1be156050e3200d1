// internal/system/spawn.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/utils"
)

// SpawnSystem порождает вражеские ракеты по таймеру. Интервал между
// запусками сокращается с ростом счёта (пол — MinSpawnInterval), скорость
// ракет тоже растёт со счётом.
type SpawnSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{world: world, rng: rng}
}

// SpawnInterval возвращает текущий интервал спавна в секундах.
func (s *SpawnSystem) SpawnInterval() float64 {
	interval := config.BaseSpawnInterval - float64(s.world.Score)/100.0*config.SpawnIntervalStep
	if interval < config.MinSpawnInterval {
		interval = config.MinSpawnInterval
	}
	return interval
}

func (s *SpawnSystem) Update() {
	w := s.world
	if w.GameTime-w.LastSpawnTime <= s.SpawnInterval() {
		return
	}
	// Время спавна фиксируется даже если запускать ракету не во что
	w.LastSpawnTime = w.GameTime

	targets := w.ActiveInstallations()
	if len(targets) == 0 {
		return
	}

	startX := s.rng.Float64() * w.Width
	targetX := targets[s.rng.Intn(len(targets))]
	speed := (1 + float64(w.Score)/config.RocketSpeedScale) * config.RocketBaseSpeed
	col := s.rng.ChooseColor(config.RocketColors)

	id := w.NewEntity()
	w.Positions[id] = &component.Position{X: startX, Y: 0}
	w.Rockets[id] = &component.Rocket{
		Start:  component.Position{X: startX, Y: 0},
		Target: component.Position{X: targetX, Y: w.GroundY()},
		Speed:  speed,
		Color:  col,
	}
	w.Renderables[id] = &component.Renderable{Color: col, Radius: config.RocketRadius}
}
