// Command spsa previews the walk cycle of every facing row of a spritesheet.
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bardowalk/assets"
	"github.com/milk9111/bardowalk/component"
	"github.com/milk9111/bardowalk/prefabs"
	"github.com/milk9111/bardowalk/system"
)

const (
	previewScale = 4
	cellPad      = 8
)

var facings = []component.Direction{component.DirDown, component.DirLeft, component.DirRight, component.DirUp}

type previewGame struct {
	sheet       *ebiten.Image
	player      component.Player
	frameCount  int
	current     int
	tick        int
	ticksPerFrm int
}

func (g *previewGame) Update() error {
	g.current, g.tick = advance(g.current, g.tick, g.ticksPerFrm, g.frameCount)
	return nil
}

// advance steps a looping frame counter by one tick.
func advance(current, tick, ticksPerFrm, frameCount int) (int, int) {
	if frameCount <= 1 {
		return 0, 0
	}
	tick++
	if tick >= ticksPerFrm {
		tick = 0
		current = (current + 1) % frameCount
	}
	return current, tick
}

func ticksPerFrame(tps, fps int) int {
	if fps <= 0 {
		return 1
	}
	ticks := tps / fps
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if g.sheet == nil {
		return
	}
	w, _ := g.player.Sprite.Size()
	for i, facing := range facings {
		p := g.player
		p.Facing = facing
		p.Frame = g.current
		src := system.SourceRect(p)
		sub, ok := g.sheet.SubImage(src.Image()).(*ebiten.Image)
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(previewScale, previewScale)
		op.GeoM.Translate(float64(cellPad+i*(w*previewScale+cellPad)), cellPad)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(sub, op)
	}
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.player.Sprite.Size()
	return len(facings)*(w*previewScale+cellPad) + cellPad, h*previewScale + 2*cellPad
}

func main() {
	sheetPath := flag.String("sheet", "assets/bardo.png", "spritesheet to preview")
	fps := flag.Int("fps", 6, "animation frames per second")
	flag.Parse()

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	sheet, err := assets.LoadImage(*sheetPath)
	if err != nil {
		log.Fatal(err)
	}

	const tps = 60
	g := &previewGame{
		sheet:       sheet,
		player:      prefabs.BuildPlayer(spec),
		frameCount:  spec.FramesPerDirection,
		ticksPerFrm: ticksPerFrame(tps, *fps),
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(g.Layout(0, 0))
	ebiten.SetWindowTitle("Walk Cycle Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
