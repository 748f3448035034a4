package data

import (
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplatesAreValid(t *testing.T) {
	for _, tmpl := range DefaultTemplates() {
		assert.NoError(t, ValidateTemplate(&tmpl), tmpl.ID)
	}
}

func TestDecodeTemplates(t *testing.T) {
	templates, err := DecodeTemplates(strings.NewReader(`
entities:
  - id: hero
    kind: player
    x: 10
    y: 10
    width: 10
    height: 10
    speed: 100
    color: "#FFFFFF"
  - id: steve
    kind: enemy
    name: Steve-o
    x: 100
    y: 100
    width: 10
    height: 10
    damage: 32
`))
	require.NoError(t, err)
	require.Len(t, templates, 2)

	assert.Equal(t, KindPlayer, templates[0].Kind)
	assert.Equal(t, float32(100), templates[0].Speed)
	assert.Equal(t, "Steve-o", templates[1].Name)
	assert.Equal(t, int32(32), templates[1].Damage)
}

func TestDecodeTemplatesRejects(t *testing.T) {
	cases := map[string]string{
		"unknown kind":  "entities:\n  - {id: a, kind: boss, width: 1, height: 1}\n",
		"missing id":    "entities:\n  - {kind: player, width: 1, height: 1}\n",
		"zero size":     "entities:\n  - {id: a, kind: player}\n",
		"nameless foe":  "entities:\n  - {id: a, kind: enemy, width: 1, height: 1}\n",
		"duplicate ids": "entities:\n  - {id: a, kind: player, width: 1, height: 1}\n  - {id: a, kind: player, width: 1, height: 1}\n",
		"bad yaml":      "entities: [",
	}
	for name, doc := range cases {
		_, err := DecodeTemplates(strings.NewReader(doc))
		assert.ErrorIs(t, err, ErrInvalidTemplate, name)
	}
}

func TestLoadTemplatesMissingFile(t *testing.T) {
	templates, err := LoadTemplatesFromFile(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplates(), templates)
}

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, color.RGBA{0x12, 0x34, 0x56, 0xff}, ParseHexColor("#123456"))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, ParseHexColor("nope"))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, ParseHexColor("#zzzzzz"))
}

func TestLoadBundledTemplates(t *testing.T) {
	templates, err := LoadTemplatesFromFile(filepath.Join("..", "resources", "entities.yaml"))
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, KindPlayer, templates[0].Kind)
	assert.Equal(t, "Steve-o", templates[1].Name)
	assert.Equal(t, int32(32), templates[1].Damage)
}
