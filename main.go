package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/junipergames/cauldron/engine"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay, file log, and live level reload")
	levelName := flag.String("level", "", "jump straight into a level (cook, door, stir)")
	flag.Parse()

	logr, sync := newLogger(*debug)
	defer sync()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(engine.ArenaWidth*2, engine.ArenaHeight*2)
	ebiten.SetWindowTitle("cauldron")

	game, err := NewGame(*levelName, *debug, logr)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
