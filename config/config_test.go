package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
map:
  path: maps/arena.tmx
  collision_layer: Solid
simulation:
  max_frame_delta: 0.1
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, "maps/arena.tmx", cfg.Map.Path)
	assert.Equal(t, "Solid", cfg.Map.CollisionLayer)
	assert.Equal(t, "collidable", cfg.Map.CollidableKey, "untouched keys keep defaults")
	assert.Equal(t, float32(0.1), cfg.Sim.MaxFrameDelta)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, TicksPerSecond, cfg.Sim.TicksPerSecond)
}

func TestDecodeEmptyDocument(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeRejectsInvalid(t *testing.T) {
	_, err := Decode(strings.NewReader("simulation:\n  ticks_per_second: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Decode(strings.NewReader("window: [1, 2"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadBundledConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Walls", cfg.Map.CollisionLayer)
	assert.Equal(t, 960, cfg.Window.Width)
	assert.Equal(t, "resources/entities.yaml", cfg.Templates)
}
