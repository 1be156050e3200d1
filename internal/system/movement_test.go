package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/types"
	"math"
	"testing"
)

func addRocket(w *entity.World, start, target component.Position, speed float64) types.EntityID {
	id := w.NewEntity()
	w.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	w.Rockets[id] = &component.Rocket{Start: start, Target: target, Speed: speed}
	return id
}

func TestRocketStaysOnRay(t *testing.T) {
	w := entity.NewWorld(800, 600)
	start := component.Position{X: 100, Y: 0}
	target := component.Position{X: 400, Y: 580}
	id := addRocket(w, start, target, 2)
	ms := NewMovementSystem(w)

	prevY := 0.0
	for i := 0; i < 200; i++ {
		ms.Update()
		pos := w.Positions[id]

		// Векторное произведение start→pos и start→target должно быть нулевым
		cross := (pos.X-start.X)*(target.Y-start.Y) - (pos.Y-start.Y)*(target.X-start.X)
		if math.Abs(cross) > 1e-6 {
			t.Fatalf("tick %d: rocket left the start→target ray, cross=%g", i, cross)
		}
		if pos.Y < prevY {
			t.Fatalf("tick %d: rocket y decreased from %f to %f", i, prevY, pos.Y)
		}
		prevY = pos.Y
	}
}

func TestRocketAdvancesBySpeedEachTick(t *testing.T) {
	w := entity.NewWorld(800, 600)
	start := component.Position{X: 0, Y: 0}
	target := component.Position{X: 0, Y: 580}
	id := addRocket(w, start, target, 2)
	ms := NewMovementSystem(w)

	ms.Update()
	pos := w.Positions[id]
	if math.Abs(pos.Y-2) > 1e-9 || pos.X != 0 {
		t.Fatalf("vertical rocket after one tick at (%f, %f), want (0, 2)", pos.X, pos.Y)
	}
}

func TestZeroDistanceKinematicsGuarded(t *testing.T) {
	w := entity.NewWorld(800, 600)
	p := component.Position{X: 250, Y: 250}
	id := addRocket(w, p, p, 5)
	ms := NewMovementSystem(w)

	for i := 0; i < 10; i++ {
		ms.Update()
	}
	pos := w.Positions[id]
	if pos.X != p.X || pos.Y != p.Y {
		t.Fatalf("degenerate rocket moved to (%f, %f)", pos.X, pos.Y)
	}
}

func TestMissileMovesTowardClickPoint(t *testing.T) {
	w := entity.NewWorld(800, 600)
	id := w.NewEntity()
	start := component.Position{X: 400, Y: 530}
	w.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	w.Missiles[id] = &component.Missile{Start: start, Target: component.Position{X: 400, Y: 300}, Speed: 6}
	ms := NewMovementSystem(w)

	ms.Update()
	pos := w.Positions[id]
	if math.Abs(pos.Y-524) > 1e-9 || pos.X != 400 {
		t.Fatalf("missile after one tick at (%f, %f), want (400, 524)", pos.X, pos.Y)
	}
}
