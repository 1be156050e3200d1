// internal/state/game_state.go
package state

import (
	"go-missile-defense/internal/app"
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры: тикает симуляцию и маршрутизирует ввод.
type GameState struct {
	sm   *StateMachine
	game *app.Game
	hud  *ui.HUD
}

func NewGameState(sm *StateMachine) *GameState {
	gameLogic := app.NewGame(config.ScreenWidth, config.ScreenHeight, 0)
	gameLogic.Start()
	return &GameState{
		sm:   sm,
		game: gameLogic,
		hud:  ui.NewHUD(),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update() {
	phase := g.game.World.Phase

	if phase == component.InProgress {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
			g.sm.SetState(NewPauseState(g.sm, g))
			return
		}
	}

	g.game.Update()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch g.game.World.Phase {
		case component.InProgress:
			g.game.FireAt(float64(x), float64(y))
		case component.Won, component.Lost:
			g.game.Reset()
		}
	}

	if g.game.World.Phase == component.Won || g.game.World.Phase == component.Lost {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.game.Reset()
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.game.RenderSystem.Draw(screen)
	g.hud.Draw(screen, g.game.World)

	switch g.game.World.Phase {
	case component.Won:
		g.hud.DrawCentered(screen, "YOU WIN", config.ScreenWidth, config.ScreenHeight/2-10, config.WonColor)
		g.hud.DrawCentered(screen, "CLICK OR PRESS R TO RESTART", config.ScreenWidth, config.ScreenHeight/2+10, config.TextLightColor)
	case component.Lost:
		g.hud.DrawCentered(screen, "ALL TURRETS DESTROYED", config.ScreenWidth, config.ScreenHeight/2-10, config.LostColor)
		g.hud.DrawCentered(screen, "CLICK OR PRESS R TO RESTART", config.ScreenWidth, config.ScreenHeight/2+10, config.TextLightColor)
	}
}

func (g *GameState) Exit() {}
