// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-missile-defense/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD рисует счёт и боезапас турелей поверх игрового поля.
// Только читает мир.
type HUD struct {
	face font.Face
}

func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

func (h *HUD) Draw(screen *ebiten.Image, w *entity.World) {
	text.Draw(screen, fmt.Sprintf("SCORE %d", w.Score), h.face, 10, 20, color.RGBA{240, 240, 240, 255})

	// Остаток ракет под каждой турелью
	for _, t := range w.Turrets {
		label := fmt.Sprintf("%d", t.Ammo)
		if !t.Active {
			label = "X"
		}
		tx := int(t.X) - len(label)*7/2
		ty := int(w.GroundY()) + 15
		text.Draw(screen, label, h.face, tx, ty, color.RGBA{240, 240, 240, 255})
	}
}

// DrawCentered выводит строку по центру экрана с заданным смещением по Y.
func (h *HUD) DrawCentered(screen *ebiten.Image, msg string, width, y int, clr color.RGBA) {
	tx := (width - len(msg)*7) / 2
	text.Draw(screen, msg, h.face, tx, y, clr)
}
