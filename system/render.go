package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bardowalk/common"
	"github.com/milk9111/bardowalk/component"
)

const backgroundGreen = 64

// SourceRect returns the sheet region for the player's frame and facing.
func SourceRect(p component.Player) common.Rect {
	w, h := p.Sprite.Size()
	return common.Rect{
		X:      p.Sprite.X + w*p.Frame,
		Y:      p.Sprite.Y + h*p.Facing.SheetRow(),
		Width:  w,
		Height: h,
	}
}

// DestRect returns where the sprite lands on a screen of the given size. The
// centre of the screen is the world origin.
func DestRect(p component.Player, screenW, screenH int) common.Rect {
	w, h := p.Sprite.Size()
	center := p.Position.Offset(screenW/2, screenH/2)
	return common.FromCenter(center, w, h)
}

// BackgroundColor is the clear colour for colour-cycle tick i.
func BackgroundColor(i uint8) color.RGBA {
	return color.RGBA{R: i, G: backgroundGreen, B: 255 - i, A: 0xff}
}

type RenderSystem struct {
	Sheet *ebiten.Image
}

func NewRenderSystem(sheet *ebiten.Image) *RenderSystem {
	return &RenderSystem{Sheet: sheet}
}

// Draw clears the screen and draws the player's current frame.
func (r *RenderSystem) Draw(screen *ebiten.Image, p component.Player, tick uint8) {
	if r == nil || screen == nil {
		return
	}

	screen.Fill(BackgroundColor(tick))
	if r.Sheet == nil {
		return
	}

	src := SourceRect(p)
	sub, ok := r.Sheet.SubImage(src.Image()).(*ebiten.Image)
	if !ok {
		return
	}

	bounds := screen.Bounds()
	dst := DestRect(p, bounds.Dx(), bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	screen.DrawImage(sub, op)
}
