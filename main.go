package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bonecollector/config"
	"github.com/milk9111/bonecollector/logging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	debug := flag.Bool("debug", cfg.Debug, "enable debug mode (form cycling with C, parts with B, labels)")
	watch := flag.Bool("watch", cfg.WatchPrefabs, "reload animation catalogs when prefabs/ changes on disk")
	form := flag.String("form", cfg.StartForm, "starting form: only_head, half_body or full_body")
	tps := flag.Int("tps", cfg.TPS, "simulation ticks per second")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level")
	flag.Parse()

	cfg.Debug = *debug
	cfg.WatchPrefabs = *watch
	cfg.StartForm = *form
	cfg.TPS = *tps
	cfg.LogLevel = *logLevel
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("BoneCollector")
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg, log)
	if err != nil {
		log.Fatal("start game", zap.Error(err))
	}
	defer func() { _ = game.Close() }()

	if err := ebiten.RunGame(game); err != nil {
		log.Error("run game", zap.Error(err))
	}
}
