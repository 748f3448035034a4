package spawners

import (
	"image/color"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"ebiten-tilecollide/components"
	"ebiten-tilecollide/data"
	"ebiten-tilecollide/ecs"
	"ebiten-tilecollide/geom"
)

// WallColor is the fill color of wall colliders
var WallColor = color.RGBA{230, 41, 55, 255}

// EntitySpawner manages the creation of game entities.
// It is the only place entities get a Collider, and it always pairs it with a Transform.
type EntitySpawner struct {
	world  *ecs.World
	logger *zap.Logger
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, logger *zap.Logger) *EntitySpawner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntitySpawner{
		world:  world,
		logger: logger,
	}
}

// CreatePlayer creates a player entity at the given position
func (s *EntitySpawner) CreatePlayer(pos, size geom.Vec2, speed float32, clr color.RGBA) (ecs.EntityID, error) {
	id, err := s.createBody(pos, size, speed, clr, components.CategoryPlayer)
	if err != nil {
		return ecs.NoEntity, err
	}
	if err := s.world.AddComponent(id, components.Player, &components.PlayerComponent{IsPlayer: true}); err != nil {
		return ecs.NoEntity, err
	}

	s.logger.Debug("player created", zap.Stringer("entity", id), zap.Float32("x", pos.X), zap.Float32("y", pos.Y))
	return id, nil
}

// CreateEnemy creates an enemy entity at the given position
func (s *EntitySpawner) CreateEnemy(pos, size geom.Vec2, speed float32, clr color.RGBA, name string, damage int32) (ecs.EntityID, error) {
	id, err := s.createBody(pos, size, speed, clr, components.CategoryEnemy)
	if err != nil {
		return ecs.NoEntity, err
	}
	if err := s.world.AddComponent(id, components.Enemy, &components.EnemyComponent{Name: name, Damage: damage}); err != nil {
		return ecs.NoEntity, err
	}

	s.logger.Debug("enemy created", zap.Stringer("entity", id), zap.String("name", name), zap.Int32("damage", damage))
	return id, nil
}

// CreateWall creates a static wall collider covering one tile
func (s *EntitySpawner) CreateWall(pos, size geom.Vec2) (ecs.EntityID, error) {
	return s.createBody(pos, size, 0, WallColor, components.CategoryWall)
}

// SpawnTemplates creates one entity per template, in order
func (s *EntitySpawner) SpawnTemplates(templates []data.EntityTemplate) ([]ecs.EntityID, error) {
	ids := make([]ecs.EntityID, 0, len(templates))
	for i := range templates {
		t := &templates[i]
		if err := data.ValidateTemplate(t); err != nil {
			return ids, err
		}

		pos := geom.Vec2{X: t.X, Y: t.Y}
		size := geom.Vec2{X: t.Width, Y: t.Height}
		clr := data.ParseHexColor(t.Color)

		var (
			id  ecs.EntityID
			err error
		)
		switch t.Kind {
		case data.KindPlayer:
			id, err = s.CreatePlayer(pos, size, t.Speed, clr)
		case data.KindEnemy:
			id, err = s.CreateEnemy(pos, size, t.Speed, clr, t.Name, t.Damage)
		}
		if err != nil {
			return ids, errors.Wrapf(err, "spawn template %s", t.ID)
		}
		ids = append(ids, id)
	}

	s.logger.Info("entities spawned", zap.Int("count", len(ids)))
	return ids, nil
}

// createBody attaches the Transform, Drawable and Collider every colliding entity carries
func (s *EntitySpawner) createBody(pos, size geom.Vec2, speed float32, clr color.RGBA, category components.CollisionCategory) (ecs.EntityID, error) {
	id := s.world.CreateEntity()

	if err := s.world.AddComponent(id, components.Transform, &components.TransformComponent{
		Position: pos,
		Speed:    speed,
	}); err != nil {
		return ecs.NoEntity, err
	}

	if err := s.world.AddComponent(id, components.Drawable, &components.DrawableComponent{
		Size:  size,
		Color: clr,
	}); err != nil {
		return ecs.NoEntity, err
	}

	if err := s.world.AddComponent(id, components.Collider, &components.ColliderComponent{
		Bounds:   geom.NewRect(pos, size),
		Category: category,
	}); err != nil {
		return ecs.NoEntity, err
	}

	return id, nil
}
