// internal/app/game.go
package app

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/system"
	"go-missile-defense/internal/types"
	"go-missile-defense/internal/utils"
	"log"
	"math"
)

// Game владеет миром матча и последовательностью систем одного тика.
// Вся мутация состояния проходит через узкие точки входа: Update (тик),
// FireAt (ввод игрока), Start/Reset (жизненный цикл), Resize. Хост ebiten
// однопоточный; встраивание в многопоточный хост потребовало бы обернуть
// эти четыре метода одним мьютексом.
type Game struct {
	World           *entity.World
	SpawnSystem     *system.SpawnSystem
	MovementSystem  *system.MovementSystem
	ImpactSystem    *system.ImpactSystem
	ExplosionSystem *system.ExplosionSystem
	RenderSystem    *system.RenderSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
}

// NewGame создаёт игру с миром в состоянии NOT_STARTED.
// Сид 0 — живой рандом; тесты передают фиксированный сид.
func NewGame(width, height float64, seed int64) *Game {
	if width <= 0 || height <= 0 {
		panic("game: field dimensions must be positive")
	}
	g := &Game{
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(seed),
	}
	g.rebuild(width, height)

	listener := &matchListener{game: g}
	g.EventDispatcher.Subscribe(event.RocketDestroyed, listener)
	g.EventDispatcher.Subscribe(event.InstallationDestroyed, listener)
	g.EventDispatcher.Subscribe(event.MatchEnded, listener)
	return g
}

// rebuild атомарно заменяет мир и пересобирает системы поверх него.
// Старый мир после этого недостижим — отложенных колбэков, способных
// увидеть его, в однопоточном цикле ebiten не существует.
func (g *Game) rebuild(width, height float64) {
	w := entity.NewWorld(width, height)
	g.World = w
	g.SpawnSystem = system.NewSpawnSystem(w, g.Rng)
	g.MovementSystem = system.NewMovementSystem(w)
	g.ImpactSystem = system.NewImpactSystem(w, g.EventDispatcher)
	g.ExplosionSystem = system.NewExplosionSystem(w, g.EventDispatcher)
	g.RenderSystem = system.NewRenderSystem(w)
}

// Start переводит свежий мир в IN_PROGRESS.
func (g *Game) Start() {
	g.rebuild(g.World.Width, g.World.Height)
	g.World.Phase = component.InProgress
}

// Reset отбрасывает текущий матч и начинает новый.
func (g *Game) Reset() {
	g.Start()
}

// Resize обновляет логические размеры поля. Матч не сбрасывается —
// это чисто компоновочная корректировка.
func (g *Game) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	g.World.Width = width
	g.World.Height = height
}

// Update выполняет один тик симуляции: спавн → кинематика → попадания →
// взрывы → оценка исхода. Терминальные состояния не тикают.
func (g *Game) Update() {
	w := g.World
	if w.Phase != component.InProgress {
		return
	}
	w.GameTime += config.TickDuration
	g.SpawnSystem.Update()
	g.MovementSystem.Update()
	g.ImpactSystem.Update()
	g.ExplosionSystem.Update()
	g.evaluateOutcome()
}

// evaluateOutcome проверяет условия конца матча. Победа проверяется
// раньше поражения: в тике, где выполнились оба условия, засчитывается
// победа.
func (g *Game) evaluateOutcome() {
	w := g.World
	if w.Score >= config.WinScore {
		w.Phase = component.Won
		g.EventDispatcher.Dispatch(event.Event{Type: event.MatchEnded, Data: component.Won})
		return
	}
	for _, t := range w.Turrets {
		if t.Active {
			return
		}
	}
	w.Phase = component.Lost
	g.EventDispatcher.Dispatch(event.Event{Type: event.MatchEnded, Data: component.Lost})
}

// FireAt обрабатывает клик игрока по полю. Стреляет активная турель с
// боезапасом, ближайшая по горизонтали к точке клика; при равном
// расстоянии — первая по порядку создания. Если стрелять некому,
// клик молча игнорируется.
func (g *Game) FireAt(x, y float64) {
	w := g.World
	if w.Phase != component.InProgress {
		return
	}

	var best *component.Turret
	bestDist := math.MaxFloat64
	for _, t := range w.Turrets {
		if !t.Active || t.Ammo <= 0 {
			continue
		}
		if d := math.Abs(t.X - x); d < bestDist {
			bestDist = d
			best = t
		}
	}
	if best == nil {
		return
	}

	best.Ammo--
	start := component.Position{X: best.X, Y: w.GroundY() - config.MuzzleOffset}
	id := w.NewEntity()
	w.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	w.Missiles[id] = &component.Missile{
		Start:    start,
		Target:   component.Position{X: x, Y: y},
		Speed:    config.MissileSpeed,
		TurretID: best.ID,
	}
	w.Renderables[id] = &component.Renderable{Color: config.MissileColor, Radius: config.MissileRadius}
}

// matchListener начисляет очки и пишет в лог заметные события матча.
type matchListener struct {
	game *Game
}

func (l *matchListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.RocketDestroyed:
		l.game.World.Score += config.ScorePerRocket
	case event.InstallationDestroyed:
		if id, ok := e.Data.(types.EntityID); ok {
			log.Printf("installation %d destroyed", id)
		}
	case event.MatchEnded:
		if phase, ok := e.Data.(component.MatchPhase); ok {
			log.Printf("match ended: %s, score %d", phase, l.game.World.Score)
		}
	}
}
