package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-tilecollide/components"
	"ebiten-tilecollide/data"
	"ebiten-tilecollide/ecs"
	"ebiten-tilecollide/geom"
	"ebiten-tilecollide/spawners"
	"ebiten-tilecollide/systems"
	"ebiten-tilecollide/tilemap"
)

var white = data.ParseHexColor("#FFFFFF")

func wallMap(t *testing.T) (*tilemap.Map, tilemap.Atlas) {
	t.Helper()
	m, err := tilemap.New(2, 2, 16, 16, tilemap.Layer{
		Name:       "Walls",
		Properties: []tilemap.Property{{Name: "collidable", Type: "bool", Value: "true"}},
		Tiles:      []uint32{1, 1, 1, 1},
	})
	require.NoError(t, err)
	atlas, err := tilemap.NewAtlas(32, 32, 16, 16)
	require.NoError(t, err)
	return m, atlas
}

func newPlayer(t *testing.T, world *ecs.World, x, y float32) ecs.EntityID {
	t.Helper()
	id, err := spawners.NewEntitySpawner(world, nil).CreatePlayer(
		geom.Vec2{X: x, Y: y}, geom.Vec2{X: 10, Y: 10}, 100, white)
	require.NoError(t, err)
	return id
}

func TestFirstFrameSeedsWallsAndDetectsOverlap(t *testing.T) {
	world := ecs.NewWorld()
	m, atlas := wallMap(t)
	sim := New(world, m, atlas, Options{})
	player := newPlayer(t, world, 0, 0)

	result, err := sim.AdvanceFrame(1.0/60, geom.Axes{})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Tiles.WallsCreated)
	assert.Equal(t, 4, result.Tiles.Drawn)
	assert.Equal(t, 5, world.EntityCount())

	var walls []geom.Vec2
	for id := range world.View(components.Collider).Exclude(components.Player).Entities() {
		tr, ok := ecs.Get[*components.TransformComponent](world, id, components.Transform)
		require.True(t, ok)
		walls = append(walls, tr.Position)
	}
	assert.ElementsMatch(t, []geom.Vec2{{X: 0, Y: 0}, {X: 16, Y: 0}, {X: 0, Y: 16}, {X: 16, Y: 16}}, walls)

	assert.Equal(t, 4, result.Commands.Count(systems.DrawTile))
	// Four walls and the player
	assert.Equal(t, 5, result.Commands.Count(systems.DrawRect))

	require.Len(t, result.Collisions.Events, 1)
	event := result.Collisions.Events[0]
	assert.Equal(t, systems.EventPlayerWall, event.Kind)
	assert.Equal(t, player, event.Player)
	assert.Equal(t, uint64(1), sim.Collisions())

	assert.Equal(t, []string{"Wall collision detected", "Collision Detected 1 times"}, sim.Messages().Texts())
}

func TestLaterFramesDoNotReseed(t *testing.T) {
	world := ecs.NewWorld()
	m, atlas := wallMap(t)
	sim := New(world, m, atlas, Options{})
	newPlayer(t, world, 0, 0)

	for i := 0; i < 3; i++ {
		result, err := sim.AdvanceFrame(1.0/60, geom.Axes{})
		require.NoError(t, err)
		if i > 0 {
			assert.Zero(t, result.Tiles.WallsCreated)
		}
		assert.Equal(t, 4, result.Tiles.Drawn)
	}

	assert.Equal(t, 5, world.EntityCount())
	assert.Equal(t, uint64(3), sim.Collisions())
	assert.Equal(t, uint64(3), sim.Frame())
}

func TestMovementFeedsCollision(t *testing.T) {
	world := ecs.NewWorld()
	m, atlas := wallMap(t)
	sim := New(world, m, atlas, Options{})
	player := newPlayer(t, world, 0, 0)

	result, err := sim.AdvanceFrame(0.1, geom.Axes{X: 1})
	require.NoError(t, err)

	tr, ok := ecs.Get[*components.TransformComponent](world, player, components.Transform)
	require.True(t, ok)
	assert.InDelta(t, 10, tr.Position.X, 1e-4)
	assert.InDelta(t, 0, tr.Position.Y, 1e-4)

	col, ok := ecs.Get[*components.ColliderComponent](world, player, components.Collider)
	require.True(t, ok)
	assert.Equal(t, tr.Position.X, col.Bounds.X)

	// The moved player now straddles the two top walls
	assert.Len(t, result.Collisions.Events, 2)
}

func TestEnemyCollisionMessage(t *testing.T) {
	world := ecs.NewWorld()
	sim := New(world, nil, tilemap.Atlas{}, Options{})

	_, err := spawners.NewEntitySpawner(world, nil).SpawnTemplates(data.DefaultTemplates())
	require.NoError(t, err)
	newPlayer(t, world, 95, 95)

	result, err := sim.AdvanceFrame(0, geom.Axes{})
	require.NoError(t, err)

	require.Len(t, result.Collisions.Events, 1)
	event := result.Collisions.Events[0]
	assert.Equal(t, systems.EventPlayerEnemy, event.Kind)
	assert.Equal(t, "Steve-o", event.EnemyName)
	assert.Equal(t, int32(32), event.Damage)
	assert.Contains(t, sim.Messages().Texts(), "Enemy collision detected: Steve-o does 32 damage to you")
	assert.Zero(t, result.Tiles.Drawn)
}

func TestPlayersCollideWithEachOther(t *testing.T) {
	world := ecs.NewWorld()
	sim := New(world, nil, tilemap.Atlas{}, Options{})
	newPlayer(t, world, 0, 0)
	newPlayer(t, world, 5, 5)

	result, err := sim.AdvanceFrame(0, geom.Axes{})
	require.NoError(t, err)

	// Players are excluded from the other side of the pair test
	assert.Empty(t, result.Collisions.Events)
}

func TestSanitizeDelta(t *testing.T) {
	tests := []struct {
		name string
		dt   float32
		want float32
	}{
		{"normal", 1.0 / 60, 1.0 / 60},
		{"zero", 0, 0},
		{"negative", -0.5, 0},
		{"nan", float32(math.NaN()), 0},
		{"positive infinity", float32(math.Inf(1)), 0},
		{"negative infinity", float32(math.Inf(-1)), 0},
		{"too large", 3, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeDelta(tt.dt, 0.25))
		})
	}
}

func TestAdvanceFrameClampsDelta(t *testing.T) {
	world := ecs.NewWorld()
	sim := New(world, nil, tilemap.Atlas{}, Options{MaxFrameDelta: 0.1})
	player := newPlayer(t, world, 0, 0)

	result, err := sim.AdvanceFrame(5, geom.Axes{Y: 1})
	require.NoError(t, err)
	assert.Equal(t, float32(0.1), result.Delta)

	tr, _ := ecs.Get[*components.TransformComponent](world, player, components.Transform)
	assert.InDelta(t, 10, tr.Position.Y, 1e-4)
}
