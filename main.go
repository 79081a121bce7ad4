package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bardowalk/assets"
	"github.com/milk9111/bardowalk/prefabs"
	"github.com/milk9111/bardowalk/system"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", false, "reload prefabs/player.yaml when it changes on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	gameSpec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	sheet, err := assets.LoadImage(gameSpec.Sheet)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(gameSpec.Title)
	ebiten.SetWindowSize(gameSpec.Width, gameSpec.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(gameSpec.TPS)

	game := NewGame(gameSpec, playerSpec, sheet, system.NewKeyboardSource(), *debug)

	if *watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefab watch disabled: %v", err)
		} else {
			defer w.Close()
			game.SetWatcher(w)
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
