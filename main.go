package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and prefab hot reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Int64("seed", 0, "level seed; 0 picks a new one per session")
	muted := flag.Bool("muted", false, "start muted")
	metricsAddr := flag.String("metrics-addr", "", "serve prometheus metrics on this address, e.g. :2112")
	prefabDir := flag.String("prefabs", "prefabs", "directory checked for prefab overrides")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(Config{
		Debug:       *debug,
		Seed:        *seed,
		Muted:       *muted,
		MetricsAddr: *metricsAddr,
		PrefabDir:   *prefabDir,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ws := game.tuning.World
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(ws.CanvasWidth), int(ws.CanvasHeight))
	ebiten.SetWindowTitle(ws.Name)
	ebiten.SetTPS(ws.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
