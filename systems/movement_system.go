package systems

import (
	"go.uber.org/zap"

	"ebiten-tilecollide/components"
	"ebiten-tilecollide/ecs"
	"ebiten-tilecollide/geom"
)

// MovementSystem moves player-controlled entities along the input direction
type MovementSystem struct {
	logger *zap.Logger
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(logger *zap.Logger) *MovementSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MovementSystem{logger: logger}
}

// Update integrates player positions by direction * speed * dt.
// dt must already be sanitized (finite and non-negative).
func (s *MovementSystem) Update(world *ecs.World, axes geom.Axes, dt float32) {
	dir := axes.Direction()
	if dir == (geom.Vec2{}) || dt == 0 {
		return
	}

	var moves []PlayerMoveEvent
	world.View(components.Transform, components.Player).Each(func(id ecs.EntityID) {
		player, _ := ecs.Get[*components.PlayerComponent](world, id, components.Player)
		if player == nil || !player.IsPlayer {
			return
		}
		transform, _ := ecs.Get[*components.TransformComponent](world, id, components.Transform)
		if transform == nil {
			return
		}

		from := transform.Position
		transform.Position = from.Add(dir.Scale(transform.Speed * dt))
		moves = append(moves, PlayerMoveEvent{EntityID: id, From: from, To: transform.Position})
	})

	for _, m := range moves {
		world.EmitEvent(m)
	}
}
