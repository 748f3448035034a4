package tilemap

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       Map
		wantErr bool
	}{
		{
			name: "valid",
			m:    Map{Width: 2, Height: 2, TileWidth: 16, TileHeight: 16, Layers: []Layer{{Name: "Walls", Tiles: []uint32{1, 0, 0, 1}}}},
		},
		{
			name:    "missing tile size",
			m:       Map{Width: 2, Height: 2, Layers: []Layer{{Tiles: []uint32{1, 1, 1, 1}}}},
			wantErr: true,
		},
		{
			name:    "non-rectangular grid",
			m:       Map{Width: 2, Height: 2, TileWidth: 16, TileHeight: 16, Layers: []Layer{{Tiles: []uint32{1, 1, 1}}}},
			wantErr: true,
		},
		{
			name:    "empty map",
			m:       Map{TileWidth: 16, TileHeight: 16},
			wantErr: true,
		},
		{
			name: "object layers carry no grid",
			m:    Map{Width: 1, Height: 1, TileWidth: 8, TileHeight: 8, Layers: []Layer{{Name: "spawns", Type: LayerObject}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMap)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewAssignsInstanceID(t *testing.T) {
	a, err := New(1, 1, 16, 16, Layer{Name: "Walls", Tiles: []uint32{1}})
	require.NoError(t, err)
	b, err := New(1, 1, 16, 16, Layer{Name: "Walls", Tiles: []uint32{1}})
	require.NoError(t, err)

	assert.NotEqual(t, a.InstanceID, b.InstanceID)

	_, err = New(1, 1, 0, 16)
	assert.ErrorIs(t, err, ErrInvalidMap)
}

func TestLayerProperties(t *testing.T) {
	layer := Layer{Properties: []Property{
		{Name: "label", Type: "string", Value: "outer"},
		{Name: "solid", Type: "bool", Value: "false"},
		{Name: "collidable", Type: "bool", Value: "true"},
	}}

	v, ok := layer.BoolProperty("collidable")
	assert.True(t, ok)
	assert.True(t, v)

	_, ok = layer.BoolProperty("missing")
	assert.False(t, ok)

	v, ok = layer.FirstBoolProperty()
	assert.True(t, ok)
	assert.False(t, v, "first boolean is 'solid'")
}

func TestTileAt(t *testing.T) {
	m, err := New(2, 2, 16, 16, Layer{Name: "Walls", Tiles: []uint32{1, 2, 3, 4}})
	require.NoError(t, err)

	layer, ok := m.Layer("Walls")
	require.True(t, ok)
	assert.Equal(t, uint32(2), m.TileAt(layer, 1, 0))
	assert.Equal(t, uint32(3), m.TileAt(layer, 0, 1))
	assert.Equal(t, uint32(0), m.TileAt(layer, 2, 0))
	assert.Equal(t, 32, m.PixelWidth())
}

func TestAtlasSourceRect(t *testing.T) {
	// 4 columns, 2 rows of 16x16 tiles
	atlas, err := NewAtlas(64, 32, 16, 16)
	require.NoError(t, err)

	r, err := atlas.SourceRect(1)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 16), r)

	r, err = atlas.SourceRect(4)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(48, 0, 64, 16), r)

	r, err = atlas.SourceRect(6)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(16, 16, 32, 32), r)

	r, err = atlas.SourceRect(8)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(48, 16, 64, 32), r)

	_, err = atlas.SourceRect(9)
	assert.ErrorIs(t, err, ErrInvalidTileID)

	_, err = atlas.SourceRect(0)
	assert.ErrorIs(t, err, ErrInvalidTileID)
}

func TestNewAtlasRejectsDegenerateTileset(t *testing.T) {
	_, err := NewAtlas(8, 8, 16, 16)
	assert.ErrorIs(t, err, ErrInvalidMap)

	_, err = NewAtlas(64, 64, 0, 16)
	assert.ErrorIs(t, err, ErrInvalidMap)
}
