package tilemap

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// LayerType is the kind of a map layer. Only tile layers carry a tile grid.
type LayerType uint8

const (
	LayerTile LayerType = iota
	LayerObject
	LayerImage
	LayerGroup
)

func (t LayerType) String() string {
	switch t {
	case LayerTile:
		return "tile"
	case LayerObject:
		return "object"
	case LayerImage:
		return "image"
	case LayerGroup:
		return "group"
	}
	return "unknown"
}

// Property is a custom property attached to a layer
type Property struct {
	Name  string
	Type  string
	Value string
}

// Bool interprets the property value as a boolean
func (p Property) Bool() (bool, bool) {
	v, err := strconv.ParseBool(p.Value)
	if err != nil {
		return false, false
	}
	return v, true
}

// Layer is one grid of tile ids plus its metadata.
// Tiles is row-major, Width*Height long; 0 marks an empty cell, other ids are 1-based.
type Layer struct {
	Name       string
	Type       LayerType
	Properties []Property
	Tiles      []uint32
}

// BoolProperty looks up a boolean property by name
func (l *Layer) BoolProperty(name string) (value bool, found bool) {
	for _, p := range l.Properties {
		if p.Name == name {
			return p.Bool()
		}
	}
	return false, false
}

// FirstBoolProperty returns the first property holding a boolean value
func (l *Layer) FirstBoolProperty() (value bool, found bool) {
	for _, p := range l.Properties {
		if p.Type != "" && p.Type != "bool" {
			continue
		}
		if v, ok := p.Bool(); ok {
			return v, true
		}
	}
	return false, false
}

// Map is a parsed tile-grid map document
type Map struct {
	// InstanceID identifies one loaded instance of a map
	InstanceID uuid.UUID

	Width      int // in tiles
	Height     int // in tiles
	TileWidth  int // in pixels
	TileHeight int // in pixels
	Layers     []Layer
}

// New assigns a fresh instance ID to the map and validates it
func New(width, height, tileWidth, tileHeight int, layers ...Layer) (*Map, error) {
	m := &Map{
		InstanceID: uuid.New(),
		Width:      width,
		Height:     height,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Layers:     layers,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the map is rectangular and has a usable tile size
func (m *Map) Validate() error {
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return errors.Wrapf(ErrInvalidMap, "tile size %dx%d", m.TileWidth, m.TileHeight)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return errors.Wrapf(ErrInvalidMap, "map size %dx%d", m.Width, m.Height)
	}

	cells := m.Width * m.Height
	for i := range m.Layers {
		layer := &m.Layers[i]
		if layer.Type != LayerTile {
			continue
		}
		if len(layer.Tiles) != cells {
			return errors.Wrapf(ErrInvalidMap, "layer %q has %d tiles, want %d", layer.Name, len(layer.Tiles), cells)
		}
	}
	return nil
}

// Layer returns the first layer with the given name
func (m *Map) Layer(name string) (*Layer, bool) {
	for i := range m.Layers {
		if m.Layers[i].Name == name {
			return &m.Layers[i], true
		}
	}
	return nil, false
}

// TileAt returns the tile id at the given cell of a layer
func (m *Map) TileAt(layer *Layer, col, row int) uint32 {
	if col < 0 || col >= m.Width || row < 0 || row >= m.Height {
		return 0
	}
	return layer.Tiles[row*m.Width+col]
}

// PixelWidth returns the map width in pixels
func (m *Map) PixelWidth() int {
	return m.Width * m.TileWidth
}

// PixelHeight returns the map height in pixels
func (m *Map) PixelHeight() int {
	return m.Height * m.TileHeight
}
