// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H float32
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
}

// NewButton создает новую кнопку с центром текста посередине.
func NewButton(x, y, w, h float32, label string, bg color.RGBA) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Text:      label,
		TextColor: color.RGBA{240, 240, 240, 255},
		BgColor:   bg,
	}
}

// Contains проверяет, попадает ли точка внутрь кнопки.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, b.BgColor, true)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, color.RGBA{240, 240, 240, 255}, true)

	face := basicfont.Face7x13
	textW := len(b.Text) * 7
	tx := int(b.X) + (int(b.W)-textW)/2
	ty := int(b.Y) + int(b.H)/2 + 4
	text.Draw(screen, b.Text, face, tx, ty, b.TextColor)
}
