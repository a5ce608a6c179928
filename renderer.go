package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/milk9111/hurdles/common"
)

// Renderer draws solid rectangles given in scene coordinates. A single
// white pixel is scaled and tinted per draw, so no textures are needed.
type Renderer struct {
	unit *ebiten.Image
}

func NewRenderer() *Renderer {
	unit := ebiten.NewImage(1, 1)
	unit.Fill(color.White)
	return &Renderer{unit: unit}
}

// DrawRect draws a w x h rectangle (scene units) centered at pos.
func (r *Renderer) DrawRect(screen *ebiten.Image, pos common.Vec3, col colorful.Color, w, h float64) {
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())

	px, py := sceneToScreen(pos.X, pos.Y, sw, sh)
	pw := w * sw / 2
	ph := h * sh / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pw, ph)
	op.GeoM.Translate(px-pw/2, py-ph/2)
	op.ColorScale.ScaleWithColor(col.Clamped())
	screen.DrawImage(r.unit, op)
}

// sceneToScreen maps scene coordinates ([-1, 1] on both axes, y up) to
// pixel coordinates (y down).
func sceneToScreen(x, y, sw, sh float64) (float64, float64) {
	return (x + 1) / 2 * sw, (1 - y) / 2 * sh
}
