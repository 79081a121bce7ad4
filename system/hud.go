package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/bardowalk/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const hudLineSpacing = 16

// HUD draws a debug readout of the movement queue and player state.
type HUD struct {
	X, Y  float64
	Color color.Color

	face text.Face
}

func NewHUD(x, y float64, c color.Color) *HUD {
	if c == nil {
		c = colornames.White
	}
	return &HUD{X: x, Y: y, Color: c, face: text.NewGoXFace(basicfont.Face7x13)}
}

// HUDText formats the readout shown by HUD.Draw.
func HUDText(q component.MovementQueue, p component.Player, frames int, tps float64) string {
	return fmt.Sprintf("queue: %s\npos: (%d,%d)  vel: (%d,%d)\nfacing: %s  frame: %d\nFrames: %d    TPS: %.2f",
		q.String(),
		p.Position.X, p.Position.Y,
		p.Velocity.X, p.Velocity.Y,
		p.Facing, p.Frame,
		frames, tps,
	)
}

// Draw renders the readout; frames is the number of game ticks run so far.
func (h *HUD) Draw(screen *ebiten.Image, q component.MovementQueue, p component.Player, frames int) {
	if h == nil || screen == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(h.X, h.Y)
	op.ColorScale.ScaleWithColor(h.Color)
	op.LineSpacing = hudLineSpacing
	text.Draw(screen, HUDText(q, p, frames, ebiten.ActualTPS()), h.face, op)
}
