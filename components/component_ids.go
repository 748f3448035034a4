package components

import (
	"ebiten-tilecollide/ecs"
)

// Define component IDs for our game
const (
	Transform ecs.ComponentID = iota
	Drawable
	Collider
	Player
	Enemy
)

func init() {
	ecs.RegisterComponentName(Transform, "Transform")
	ecs.RegisterComponentName(Drawable, "Drawable")
	ecs.RegisterComponentName(Collider, "Collider")
	ecs.RegisterComponentName(Player, "Player")
	ecs.RegisterComponentName(Enemy, "Enemy")
}
