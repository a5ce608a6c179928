package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	sceneFile := flag.String("scene", "scene.yaml", "scene spec in prefabs/ (disk copy overrides the embedded one)")
	debug := flag.Bool("debug", false, "show FPS overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(*sceneFile, *debug)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(game.WindowSize())
	ebiten.SetWindowTitle(game.Title())

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
