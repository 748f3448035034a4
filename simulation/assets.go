package simulation

import (
	"context"
	"image"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ebiten-tilecollide/config"
	"ebiten-tilecollide/data"
	"ebiten-tilecollide/ecs"
	"ebiten-tilecollide/spawners"
	"ebiten-tilecollide/tilemap"
)

// Assets is everything loaded from disk before the first frame
type Assets struct {
	Map       *tilemap.Map
	Tileset   image.Image
	Atlas     tilemap.Atlas
	Templates []data.EntityTemplate
}

// LoadAssets loads the map, tileset image and entity templates concurrently
func LoadAssets(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Assets, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var assets Assets
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		m, err := tilemap.LoadFile(cfg.Map.Path)
		if err != nil {
			return err
		}
		assets.Map = m
		return ctx.Err()
	})

	g.Go(func() error {
		img, err := loadImage(cfg.Map.Tileset)
		if err != nil {
			return err
		}
		assets.Tileset = img
		return ctx.Err()
	})

	g.Go(func() error {
		templates, err := data.LoadTemplatesFromFile(cfg.Templates)
		if err != nil {
			return err
		}
		assets.Templates = templates
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "load assets")
	}

	bounds := assets.Tileset.Bounds()
	atlas, err := tilemap.NewAtlas(bounds.Dx(), bounds.Dy(), assets.Map.TileWidth, assets.Map.TileHeight)
	if err != nil {
		return nil, errors.Wrapf(err, "tileset %s", cfg.Map.Tileset)
	}
	assets.Atlas = atlas

	logger.Info("assets loaded",
		zap.String("map", cfg.Map.Path),
		zap.Int("layers", len(assets.Map.Layers)),
		zap.Int("tiles", atlas.TileCount()),
		zap.Int("templates", len(assets.Templates)))
	return &assets, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open tileset %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode tileset %s", path)
	}
	return img, nil
}

// Bootstrap creates a world populated from the loaded templates and a
// simulation over the loaded map
func Bootstrap(assets *Assets, cfg config.Config, logger *zap.Logger) (*ecs.World, *Simulation, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	world := ecs.NewWorld()
	sim := New(world, assets.Map, assets.Atlas, Options{
		CollisionLayer: cfg.Map.CollisionLayer,
		CollidableKey:  cfg.Map.CollidableKey,
		MaxFrameDelta:  cfg.Sim.MaxFrameDelta,
		Logger:         logger,
	})

	spawner := spawners.NewEntitySpawner(world, logger.Named("spawner"))
	if _, err := spawner.SpawnTemplates(assets.Templates); err != nil {
		return nil, nil, err
	}
	return world, sim, nil
}
