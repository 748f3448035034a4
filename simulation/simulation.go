// Package simulation runs the per-frame pipeline over one ECS world:
// tile import, movement, bounds sync and collision detection.
package simulation

import (
	"math"

	"go.uber.org/zap"

	"ebiten-tilecollide/config"
	"ebiten-tilecollide/ecs"
	"ebiten-tilecollide/geom"
	"ebiten-tilecollide/systems"
	"ebiten-tilecollide/tilemap"
)

// Options configures a Simulation
type Options struct {
	CollisionLayer string
	CollidableKey  string
	MaxFrameDelta  float32
	Logger         *zap.Logger
}

// FrameResult is everything one frame produced
type FrameResult struct {
	Frame      uint64
	Delta      float32 // dt after sanitizing
	Commands   systems.RenderCommands
	Tiles      systems.TileReport
	Collisions systems.CollisionReport
}

// Simulation owns the systems and the collision counter for one world
type Simulation struct {
	world     *ecs.World
	tiles     *systems.TileWorldSystem
	movement  *systems.MovementSystem
	render    *systems.RenderSystem
	collision *systems.CollisionSystem

	counter  systems.CollisionCounter
	messages *systems.MessageLog
	maxDelta float32
	frame    uint64
	logger   *zap.Logger
}

// New builds a simulation over world. tileMap may be nil, in which case no
// tiles are drawn and no walls are seeded.
func New(world *ecs.World, tileMap *tilemap.Map, atlas tilemap.Atlas, opts Options) *Simulation {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxDelta := opts.MaxFrameDelta
	if maxDelta <= 0 {
		maxDelta = config.MaxFrameDelta
	}

	s := &Simulation{
		world:     world,
		movement:  systems.NewMovementSystem(logger.Named("movement")),
		render:    systems.NewRenderSystem(),
		collision: systems.NewCollisionSystem(logger.Named("collision")),
		messages:  systems.NewMessageLog(),
		maxDelta:  maxDelta,
		logger:    logger,
	}
	if tileMap != nil {
		s.tiles = systems.NewTileWorldSystem(tileMap, atlas, opts.CollisionLayer, opts.CollidableKey, logger.Named("tiles"))
	}
	s.messages.SubscribeCollisions(world.EventManager())
	return s
}

// AdvanceFrame runs one frame of the pipeline: tiles, movement, bounds sync and draw, collisions
func (s *Simulation) AdvanceFrame(dt float32, axes geom.Axes) (*FrameResult, error) {
	s.frame++
	result := &FrameResult{
		Frame: s.frame,
		Delta: SanitizeDelta(dt, s.maxDelta),
	}
	if result.Delta != dt {
		s.logger.Debug("frame delta adjusted", zap.Float32("dt", dt), zap.Float32("used", result.Delta))
	}

	if s.tiles != nil {
		report, err := s.tiles.Update(s.world, &result.Commands)
		if err != nil {
			return nil, err
		}
		result.Tiles = report
	}

	s.movement.Update(s.world, axes, result.Delta)
	s.render.Update(s.world, &result.Commands)
	result.Collisions = s.collision.Update(s.world, &s.counter)

	return result, nil
}

// SanitizeDelta clamps dt into [0, limit]. NaN, infinite and negative values become 0.
func SanitizeDelta(dt, limit float32) float32 {
	f := float64(dt)
	if math.IsNaN(f) || math.IsInf(f, 0) || dt < 0 {
		return 0
	}
	if dt > limit {
		return limit
	}
	return dt
}

// World returns the simulated world
func (s *Simulation) World() *ecs.World {
	return s.world
}

// Messages returns the log of collision messages
func (s *Simulation) Messages() *systems.MessageLog {
	return s.messages
}

// Collisions returns the total number of collisions detected so far
func (s *Simulation) Collisions() uint64 {
	return s.counter.Total()
}

// TileFaults returns the cumulative number of skipped invalid tiles
func (s *Simulation) TileFaults() int {
	if s.tiles == nil {
		return 0
	}
	return s.tiles.Faults()
}

// Frame returns the number of frames advanced
func (s *Simulation) Frame() uint64 {
	return s.frame
}
