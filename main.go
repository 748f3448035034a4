package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"ebiten-tilecollide/config"
	"ebiten-tilecollide/logging"
	"ebiten-tilecollide/screens"
	"ebiten-tilecollide/simulation"
)

var (
	configPath  = flag.String("config", "config.yaml", "path to the YAML config file")
	viewTileset = flag.Bool("view-tileset", false, "browse the tileset and its tile ids instead of playing")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("exiting", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	assets, err := simulation.LoadAssets(ctx, cfg, logger.Named("assets"))
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(cfg.Sim.TicksPerSecond)

	if *viewTileset {
		ebiten.SetWindowTitle("Tileset Viewer - " + cfg.Map.Tileset)
		tileset := screens.NewTileset(assets.Tileset, assets.Atlas)
		return ebiten.RunGame(NewTilesetViewer(tileset, cfg.Map.Tileset, 48))
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	return ebiten.RunGame(NewGame(cfg, assets, logger))
}
