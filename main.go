package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/artsmajor/common"
	"github.com/milk9111/artsmajor/logger"
)

func main() {
	levelName := flag.String("level", "level_1", "level name in levels/ (basename, .json optional)")
	debug := flag.Bool("debug", false, "start with the physics debug overlay on")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml when they change on disk")
	logLevel := flag.String("log-level", "", "log level (defaults to LOG_LEVEL, then info)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	logger.Init(*logLevel, "")

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("artsmajor")

	game, err := NewGame(*levelName, *debug, *watch)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to start")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithError(err).Fatal("game stopped")
	}
}
