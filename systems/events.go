package systems

import (
	"fmt"

	"ebiten-tilecollide/ecs"
	"ebiten-tilecollide/geom"
)

// Event type constants
const (
	EventPlayerPlayer ecs.EventType = "collision.player_player"
	EventPlayerEnemy  ecs.EventType = "collision.player_enemy"
	EventPlayerWall   ecs.EventType = "collision.player_wall"
	EventMovement     ecs.EventType = "movement"
	EventWallsSeeded  ecs.EventType = "walls_seeded"
)

// CollisionEventTypes lists every event the collision system emits
var CollisionEventTypes = []ecs.EventType{EventPlayerPlayer, EventPlayerEnemy, EventPlayerWall}

// CollisionEvent is emitted when a player overlaps another collider
type CollisionEvent struct {
	Kind      ecs.EventType
	Player    ecs.EntityID // Player entity involved in collision
	Other     ecs.EntityID // Entity the player overlapped
	EnemyName string       // Set for EventPlayerEnemy
	Damage    int32        // Set for EventPlayerEnemy
	Count     uint64       // Running detection count including this one
}

// Type returns the event type
func (e CollisionEvent) Type() ecs.EventType {
	return e.Kind
}

// Message renders the event as a log line
func (e CollisionEvent) Message() string {
	switch e.Kind {
	case EventPlayerPlayer:
		return "Player collision detected"
	case EventPlayerEnemy:
		return fmt.Sprintf("Enemy collision detected: %s does %d damage to you", e.EnemyName, e.Damage)
	case EventPlayerWall:
		return "Wall collision detected"
	}
	return "Collision detected"
}

// PlayerMoveEvent is emitted when the player moves
type PlayerMoveEvent struct {
	EntityID ecs.EntityID // Entity that moved
	From     geom.Vec2
	To       geom.Vec2
}

// Type returns the event type
func (e PlayerMoveEvent) Type() ecs.EventType {
	return EventMovement
}

// WallsSeededEvent is emitted once per loaded map when its wall colliders are created
type WallsSeededEvent struct {
	MapID string
	Walls int
}

// Type returns the event type
func (e WallsSeededEvent) Type() ecs.EventType {
	return EventWallsSeeded
}
