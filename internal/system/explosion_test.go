package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"math"
	"testing"
)

func TestExplosionRadiusTrace(t *testing.T) {
	w := entity.NewWorld(800, 600)
	d := event.NewDispatcher()
	es := NewExplosionSystem(w, d)

	const maxRadius = 30.0
	id := NewExplosion(w, 400, 300, maxRadius)

	growthTicks := 0
	prev := 0.0
	for {
		es.Update()
		ex, alive := w.Explosions[id]
		if !alive {
			t.Fatalf("explosion purged during growth")
		}
		growthTicks++
		if !ex.Growing {
			if ex.Radius != maxRadius {
				t.Fatalf("growth ended at radius %f, want %f", ex.Radius, maxRadius)
			}
			break
		}
		if ex.Radius <= prev {
			t.Fatalf("radius must strictly increase during growth")
		}
		prev = ex.Radius
	}
	if want := int(math.Ceil(maxRadius / config.ExplosionGrowthRate)); growthTicks != want {
		t.Fatalf("growth took %d ticks, want %d", growthTicks, want)
	}

	decayTicks := 0
	prev = maxRadius
	for {
		es.Update()
		decayTicks++
		ex, alive := w.Explosions[id]
		if !alive {
			break
		}
		if ex.Radius >= prev {
			t.Fatalf("radius must strictly decrease during decay")
		}
		prev = ex.Radius
	}
	if want := int(math.Ceil(maxRadius / config.ExplosionDecayRate)); decayTicks != want {
		t.Fatalf("decay took %d ticks, want %d", decayTicks, want)
	}
}

func TestExplosionKillsRocketsInsideRadius(t *testing.T) {
	w := entity.NewWorld(800, 600)
	d := event.NewDispatcher()
	counter := newEventCounter(d, event.RocketDestroyed)
	es := NewExplosionSystem(w, d)

	// После одного тика роста радиус станет ровно 80
	id := NewExplosion(w, 400, 300, config.MissileBlastRadius)
	w.Explosions[id].Radius = config.MissileBlastRadius - config.ExplosionGrowthRate

	inside := addRocket(w, component.Position{X: 479, Y: 0}, component.Position{X: 479, Y: 580}, 2)
	w.Positions[inside] = &component.Position{X: 479, Y: 300} // расстояние 79
	outside := addRocket(w, component.Position{X: 481, Y: 0}, component.Position{X: 481, Y: 580}, 2)
	w.Positions[outside] = &component.Position{X: 481, Y: 300} // расстояние 81

	es.Update()

	if _, alive := w.Rockets[inside]; alive {
		t.Fatalf("rocket 79 units from center must be destroyed by radius-80 blast")
	}
	if _, alive := w.Rockets[outside]; !alive {
		t.Fatalf("rocket 81 units from center must survive")
	}
	if counter.counts[event.RocketDestroyed] != 1 {
		t.Fatalf("expected 1 RocketDestroyed event, got %d", counter.counts[event.RocketDestroyed])
	}

	// Сбитая ракета оставляет цепной взрыв на своей позиции
	chained := 0
	for eid, ex := range w.Explosions {
		if eid == id {
			continue
		}
		chained++
		if ex.MaxRadius != config.RocketBlastRadius {
			t.Fatalf("chained explosion max radius %f, want %f", ex.MaxRadius, config.RocketBlastRadius)
		}
		if ex.Radius != 0 || !ex.Growing {
			t.Fatalf("chained explosion must start at radius 0 next tick, got radius %f", ex.Radius)
		}
		pos := w.Positions[eid]
		if pos.X != 479 || pos.Y != 300 {
			t.Fatalf("chained explosion at (%f, %f), want destroyed rocket position (479, 300)", pos.X, pos.Y)
		}
	}
	if chained != 1 {
		t.Fatalf("expected exactly 1 chained explosion, got %d", chained)
	}
}

func TestShrinkingExplosionStillKills(t *testing.T) {
	w := entity.NewWorld(800, 600)
	d := event.NewDispatcher()
	es := NewExplosionSystem(w, d)

	id := NewExplosion(w, 400, 300, 30)
	w.Explosions[id].Growing = false
	w.Explosions[id].Radius = 20

	rid := addRocket(w, component.Position{X: 400, Y: 0}, component.Position{X: 400, Y: 580}, 2)
	w.Positions[rid] = &component.Position{X: 400, Y: 310} // расстояние 10 < 19.2

	es.Update()
	if _, alive := w.Rockets[rid]; alive {
		t.Fatalf("shrinking explosion is still a live hazard")
	}
}

func TestExplosionPurgedAfterDecay(t *testing.T) {
	w := entity.NewWorld(800, 600)
	d := event.NewDispatcher()
	es := NewExplosionSystem(w, d)

	id := NewExplosion(w, 100, 100, 30)
	w.Explosions[id].Growing = false
	w.Explosions[id].Radius = 0.5

	es.Update()
	if _, alive := w.Explosions[id]; alive {
		t.Fatalf("explosion must be purged once radius reaches zero")
	}
	if _, ok := w.Positions[id]; ok {
		t.Fatalf("purged explosion left its position behind")
	}
}

func TestRocketKilledOnceByOverlappingBlasts(t *testing.T) {
	w := entity.NewWorld(800, 600)
	d := event.NewDispatcher()
	counter := newEventCounter(d, event.RocketDestroyed)
	es := NewExplosionSystem(w, d)

	a := NewExplosion(w, 390, 300, 80)
	b := NewExplosion(w, 410, 300, 80)
	w.Explosions[a].Radius = 50
	w.Explosions[b].Radius = 50

	rid := addRocket(w, component.Position{X: 400, Y: 0}, component.Position{X: 400, Y: 580}, 2)
	w.Positions[rid] = &component.Position{X: 400, Y: 300}

	es.Update()
	if counter.counts[event.RocketDestroyed] != 1 {
		t.Fatalf("rocket inside two blasts destroyed %d times, want once", counter.counts[event.RocketDestroyed])
	}
}
