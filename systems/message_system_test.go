package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-tilecollide/ecs"
)

func TestMessageLogTruncates(t *testing.T) {
	log := NewMessageLog()
	log.MaxMessages = 3
	for _, m := range []string{"a", "b", "c", "d"} {
		log.Add(m)
	}

	assert.Equal(t, []string{"b", "c", "d"}, log.Texts())
	recent := log.RecentMessages(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "d", recent[0].Text)
	assert.Equal(t, "c", recent[1].Text)
	assert.Len(t, log.RecentMessages(10), 3)

	log.Clear()
	assert.Empty(t, log.Messages)
}

func TestMessageLogUnsubscribe(t *testing.T) {
	em := ecs.NewEventManager()
	log := NewMessageLog()
	for _, sub := range log.SubscribeCollisions(em) {
		em.Unsubscribe(sub)
	}

	em.Emit(CollisionEvent{Kind: EventPlayerEnemy, EnemyName: "Steve-o", Damage: 32, Count: 1})

	assert.Empty(t, log.Messages)
}

func TestCollisionEventMessage(t *testing.T) {
	e := CollisionEvent{Kind: EventPlayerEnemy, EnemyName: "Steve-o", Damage: 32}
	assert.Equal(t, "Enemy collision detected: Steve-o does 32 damage to you", e.Message())
}

func TestMessageLogColorsCollisionKinds(t *testing.T) {
	em := ecs.NewEventManager()
	log := NewMessageLog()
	log.SubscribeCollisions(em)

	em.Emit(CollisionEvent{Kind: EventPlayerWall, Count: 1})
	em.Emit(CollisionEvent{Kind: EventPlayerEnemy, EnemyName: "Steve-o", Damage: 32, Count: 2})

	require.Len(t, log.Messages, 4)
	assert.Equal(t, MessageTypeEnvironment, log.Messages[0].Type)
	assert.Equal(t, MessageTypeSystem, log.Messages[1].Type)
	assert.Equal(t, "Collision Detected 1 times", log.Messages[1].Text)
	assert.Equal(t, MessageTypeCombat, log.Messages[2].Type)
	assert.Equal(t, "Collision Detected 2 times", log.Messages[3].Text)

	assert.NotEqual(t, log.Messages[0].GetColor(), log.Messages[2].GetColor())
}
