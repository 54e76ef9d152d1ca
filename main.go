package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/uifx/common"
	"github.com/milk9111/uifx/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "log effect lifecycle diagnostics")
	watch := flag.Bool("watch", false, "hot reload prefabs from the -prefabs directory")
	prefabDir := flag.String("prefabs", "prefabs", "directory whose prefab files override the embedded ones")
	sceneName := flag.String("scene", "showcase", "scene name in prefabs/scenes (basename, .yaml optional)")
	flag.Parse()

	prefabs.Dir = *prefabDir

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("uifx")

	game, err := NewGame(*sceneName, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
