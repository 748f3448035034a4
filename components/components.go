package components

import (
	"image/color"

	"ebiten-tilecollide/geom"
)

// CollisionCategory classifies colliders for collision dispatch
type CollisionCategory uint8

const (
	CategoryPlayer CollisionCategory = iota
	CategoryWall
	CategoryEnemy
)

func (c CollisionCategory) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryWall:
		return "wall"
	case CategoryEnemy:
		return "enemy"
	}
	return "unknown"
}

// TransformComponent stores entity position in pixels and its movement speed in pixels per second
type TransformComponent struct {
	Position geom.Vec2
	Speed    float32
}

// DrawableComponent stores the size and fill color of a drawn rectangle
type DrawableComponent struct {
	Size  geom.Vec2
	Color color.RGBA
}

// ColliderComponent stores the collision rectangle and category.
// Bounds is rewritten every frame from the Transform and Drawable by the render system.
type ColliderComponent struct {
	Bounds   geom.Rect
	Category CollisionCategory
}

// PlayerComponent marks an entity controlled by the player
type PlayerComponent struct {
	IsPlayer bool
}

// EnemyComponent describes a hostile entity
type EnemyComponent struct {
	Name   string
	Damage int32
}
