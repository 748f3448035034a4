package systems

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"ebiten-tilecollide/ecs"
	"ebiten-tilecollide/geom"
	"ebiten-tilecollide/spawners"
	"ebiten-tilecollide/tilemap"
)

// Defaults for locating the collision layer of a map
const (
	DefaultCollisionLayer = "Walls"
	DefaultCollidableKey  = "collidable"
)

// TileReport summarizes one pass of the tile world system
type TileReport struct {
	Drawn        int // Tiles queued for drawing
	InvalidTiles int // Cells skipped because their id is outside the tileset
	WallsCreated int // Wall entities created by this pass
}

// TileWorldSystem draws the tile layers of a map each frame and, on its first
// pass, turns the cells of the collision layer into wall entities.
// Once seeded it never creates walls again for the same map instance.
type TileWorldSystem struct {
	tileMap        *tilemap.Map
	atlas          tilemap.Atlas
	collisionLayer string
	collidableKey  string

	seeded bool
	walls  []ecs.EntityID
	faults int
	warned bool

	logger *zap.Logger
}

// NewTileWorldSystem creates a tile world system for one loaded map
func NewTileWorldSystem(tileMap *tilemap.Map, atlas tilemap.Atlas, collisionLayer, collidableKey string, logger *zap.Logger) *TileWorldSystem {
	if collisionLayer == "" {
		collisionLayer = DefaultCollisionLayer
	}
	if collidableKey == "" {
		collidableKey = DefaultCollidableKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TileWorldSystem{
		tileMap:        tileMap,
		atlas:          atlas,
		collisionLayer: collisionLayer,
		collidableKey:  collidableKey,
		logger:         logger.With(zap.Stringer("map", tileMap.InstanceID)),
	}
}

// Update queues a draw for every non-empty tile and seeds walls on the first pass
func (s *TileWorldSystem) Update(world *ecs.World, cmds *RenderCommands) (TileReport, error) {
	var report TileReport
	m := s.tileMap
	seeding := !s.seeded
	var created []ecs.EntityID
	var spawner *spawners.EntitySpawner
	if seeding {
		spawner = spawners.NewEntitySpawner(world, s.logger)
	}

	tileSize := geom.Vec2{X: float32(m.TileWidth), Y: float32(m.TileHeight)}

	for i := range m.Layers {
		layer := &m.Layers[i]
		if layer.Type != tilemap.LayerTile {
			continue
		}
		seedLayer := seeding && layer.Name == s.collisionLayer && s.collidable(layer)

		for row := 0; row < m.Height; row++ {
			for col := 0; col < m.Width; col++ {
				id := layer.Tiles[row*m.Width+col]
				if id == 0 {
					continue
				}

				pos := geom.Vec2{X: float32(col * m.TileWidth), Y: float32(row * m.TileHeight)}

				if seedLayer {
					wall, err := spawner.CreateWall(pos, tileSize)
					if err != nil {
						s.rollback(world, created)
						return TileReport{}, errors.Wrapf(err, "seed wall at %d,%d", col, row)
					}
					created = append(created, wall)
				}

				src, err := s.atlas.SourceRect(id)
				if err != nil {
					report.InvalidTiles++
					continue
				}
				cmds.AddTile(id, src, geom.NewRect(pos, tileSize))
				report.Drawn++
			}
		}
	}

	if report.InvalidTiles > 0 {
		s.faults += report.InvalidTiles
		if !s.warned {
			s.warned = true
			s.logger.Warn("skipping tiles outside the tileset",
				zap.Int("cells", report.InvalidTiles),
				zap.Int("tileset_tiles", s.atlas.TileCount()))
		}
	}

	if seeding {
		s.seeded = true
		s.walls = created
		report.WallsCreated = len(created)
		s.logger.Info("walls seeded", zap.String("layer", s.collisionLayer), zap.Int("walls", len(created)))
		world.EmitEvent(WallsSeededEvent{MapID: m.InstanceID.String(), Walls: len(created)})
	}

	return report, nil
}

// collidable resolves the layer's collision flag by property name, falling
// back to the first boolean property for maps that only carry an unnamed flag
func (s *TileWorldSystem) collidable(layer *tilemap.Layer) bool {
	if v, found := layer.BoolProperty(s.collidableKey); found {
		return v
	}
	v, found := layer.FirstBoolProperty()
	if found {
		s.logger.Debug("collision flag resolved positionally",
			zap.String("layer", layer.Name), zap.String("missing_key", s.collidableKey))
	}
	return v
}

func (s *TileWorldSystem) rollback(world *ecs.World, created []ecs.EntityID) {
	for _, id := range created {
		if err := world.RemoveEntity(id); err != nil {
			s.logger.Error("rollback wall", zap.Stringer("entity", id), zap.Error(err))
		}
	}
}

// Seeded reports whether the wall colliders for this map have been created
func (s *TileWorldSystem) Seeded() bool {
	return s.seeded
}

// Walls returns the wall entities created during seeding
func (s *TileWorldSystem) Walls() []ecs.EntityID {
	out := make([]ecs.EntityID, len(s.walls))
	copy(out, s.walls)
	return out
}

// WallCount returns how many wall entities seeding created
func (s *TileWorldSystem) WallCount() int {
	return len(s.walls)
}

// MapID returns the instance id of the imported map
func (s *TileWorldSystem) MapID() string {
	return s.tileMap.InstanceID.String()
}

// Faults returns the cumulative number of skipped invalid tiles
func (s *TileWorldSystem) Faults() int {
	return s.faults
}

// Map returns the map this system imports
func (s *TileWorldSystem) Map() *tilemap.Map {
	return s.tileMap
}
