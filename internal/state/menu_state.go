// internal/state/menu_state.go
package state

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран. Матч ещё не создан (NOT_STARTED).
type MenuState struct {
	sm          *StateMachine
	hud         *ui.HUD
	startButton *ui.Button
}

func NewMenuState(sm *StateMachine) *MenuState {
	button := ui.NewButton(
		config.ScreenWidth/2-80, config.ScreenHeight/2, 160, 40,
		"START", config.TurretColor,
	)
	return &MenuState{sm: sm, hud: ui.NewHUD(), startButton: button}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm))
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y := ebiten.CursorPosition(); m.startButton.Contains(x, y) {
			m.sm.SetState(NewGameState(m.sm))
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.hud.DrawCentered(screen, "MISSILE DEFENSE", config.ScreenWidth, config.ScreenHeight/2-60, config.TextLightColor)
	m.hud.DrawCentered(screen, "DEFEND THE CITIES", config.ScreenWidth, config.ScreenHeight/2-40, config.TextLightColor)
	m.startButton.Draw(screen)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
