package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bardowalk/component"
	"github.com/milk9111/bardowalk/prefabs"
	"github.com/milk9111/bardowalk/system"
)

type gameState int

const (
	stateRunning gameState = iota
	stateTerminated
)

type Game struct {
	state  gameState
	frames int
	// stepped is set by a simulation step and cleared by Draw. Ticks ebiten
	// runs to catch up after a stall find it set and only drain input.
	stepped bool
	// tick drives the background colour ramp and wraps at 256.
	tick uint8

	width, height int

	queue  component.MovementQueue
	player component.Player
	tuning component.Tuning

	input   *system.InputSystem
	render  *system.RenderSystem
	hud     *system.HUD
	watcher *prefabs.Watcher
	debug   bool
}

func NewGame(cfg *prefabs.GameSpec, playerSpec *prefabs.PlayerSpec, sheet *ebiten.Image, source system.EventSource, debug bool) *Game {
	g := &Game{
		state:  stateRunning,
		width:  cfg.Width,
		height: cfg.Height,
		queue:  component.NewMovementQueue(),
		player: prefabs.BuildPlayer(playerSpec),
		tuning: prefabs.BuildTuning(playerSpec),
		input:  system.NewInputSystem(source, debug),
		render: system.NewRenderSystem(sheet),
		debug:  debug,
	}
	if debug {
		var hudColor color.Color
		if cfg.HUD.Color != nil {
			hudColor = cfg.HUD.Color.Color
		}
		g.hud = system.NewHUD(cfg.HUD.X, cfg.HUD.Y, hudColor)
	}
	return g
}

// SetWatcher enables hot reload of the player prefab.
func (g *Game) SetWatcher(w *prefabs.Watcher) {
	g.watcher = w
}

func (g *Game) Update() error {
	if g.state == stateTerminated {
		return ebiten.Termination
	}
	g.frames++

	if g.input.Update(&g.queue) {
		g.state = stateTerminated
		return ebiten.Termination
	}

	g.reloadPrefabs()

	if g.stepped {
		return nil
	}
	g.tick++
	g.player = system.Step(g.queue, g.player, g.tuning)
	g.stepped = true
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.stepped = false
	g.render.Draw(screen, g.player, g.tick)
	if g.hud != nil {
		g.hud.Draw(screen, g.queue, g.player, g.frames)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefabs: watch: %v", err)
		}
	default:
	}

	for _, name := range g.watcher.Poll() {
		if name != prefabs.PlayerSpecFile {
			continue
		}
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Printf("failed to reload %s: %v", name, err)
			continue
		}
		g.tuning = prefabs.BuildTuning(spec)
		g.player.Sprite = prefabs.BuildPlayer(spec).Sprite
		if g.player.Frame >= g.tuning.FramesPerDirection {
			g.player.Frame = 0
		}
		log.Printf("reloaded %s: speed=%d frames=%d", name, g.tuning.Speed, g.tuning.FramesPerDirection)
	}
}
