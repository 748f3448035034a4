package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"ebiten-tilecollide/config"
	"ebiten-tilecollide/screens"
	"ebiten-tilecollide/simulation"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg     config.Config
	assets  *simulation.Assets
	tileset *screens.Tileset
	screens *screens.ScreenStack
	logger  *zap.Logger
}

// NewGame creates a game that opens on the start screen
func NewGame(cfg config.Config, assets *simulation.Assets, logger *zap.Logger) *Game {
	g := &Game{
		cfg:     cfg,
		assets:  assets,
		tileset: screens.NewTileset(assets.Tileset, assets.Atlas),
		screens: screens.NewScreenStack(),
		logger:  logger,
	}
	g.screens.Push(screens.NewStartScreen(cfg.Window.Title, g.width(), g.height()))
	return g
}

// Update updates the game state.
func (g *Game) Update() error {
	err := g.screens.Update()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrNewGame):
		return g.startPlay()
	case errors.Is(err, screens.ErrQuit):
		g.logger.Info("quit requested")
		return ebiten.Termination
	}
	return err
}

// startPlay builds a fresh world from the loaded assets and swaps in the game screen
func (g *Game) startPlay() error {
	_, sim, err := simulation.Bootstrap(g.assets, g.cfg, g.logger)
	if err != nil {
		return errors.Wrap(err, "start game")
	}

	g.screens.Replace(screens.NewGameScreen(sim, g.tileset, g.cfg.Sim.TicksPerSecond, g.width(), g.height(), g.logger.Named("game")))
	g.logger.Info("game started", zap.Stringer("map", g.assets.Map.InstanceID))
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screens.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screens.Layout(outsideWidth, outsideHeight)
}

// The logical resolution covers the whole map
func (g *Game) width() int {
	return max(g.assets.Map.PixelWidth(), config.TileSize)
}

func (g *Game) height() int {
	return max(g.assets.Map.PixelHeight(), config.TileSize)
}
