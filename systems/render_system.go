package systems

import (
	"ebiten-tilecollide/components"
	"ebiten-tilecollide/ecs"
	"ebiten-tilecollide/geom"
)

// RenderSystem keeps collider bounds in sync with transforms and queues a
// filled rectangle for every collidable drawable entity
type RenderSystem struct{}

// NewRenderSystem creates a new rendering system
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Update syncs each entity's collider to its transform and size, then queues its draw
func (s *RenderSystem) Update(world *ecs.World, cmds *RenderCommands) {
	world.View(components.Drawable, components.Transform, components.Collider).Each(func(id ecs.EntityID) {
		transform, _ := ecs.Get[*components.TransformComponent](world, id, components.Transform)
		draw, _ := ecs.Get[*components.DrawableComponent](world, id, components.Drawable)
		collider, _ := ecs.Get[*components.ColliderComponent](world, id, components.Collider)
		if transform == nil || draw == nil || collider == nil {
			return
		}

		collider.Bounds = geom.NewRect(transform.Position, draw.Size)
		cmds.AddRect(collider.Bounds, draw.Color)
	})
}
