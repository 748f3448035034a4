package tilemap

import (
	"io"

	"github.com/google/uuid"
	"github.com/lafriks/go-tiled"
	"github.com/pkg/errors"
)

// LoadFile parses a TMX document from disk and validates it
func LoadFile(path string) (*Map, error) {
	tm, err := tiled.LoadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidMap, "parse %s: %v", path, err)
	}
	return fromTiled(tm)
}

// LoadReader parses a TMX document from r. External tilesets are resolved
// relative to baseDir.
func LoadReader(baseDir string, r io.Reader) (*Map, error) {
	tm, err := tiled.LoadReader(baseDir, r)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidMap, "parse: %v", err)
	}
	return fromTiled(tm)
}

func fromTiled(tm *tiled.Map) (*Map, error) {
	m := &Map{
		InstanceID: uuid.New(),
		Width:      tm.Width,
		Height:     tm.Height,
		TileWidth:  tm.TileWidth,
		TileHeight: tm.TileHeight,
		Layers:     make([]Layer, 0, len(tm.Layers)+len(tm.ObjectGroups)),
	}

	for _, l := range tm.Layers {
		layer := Layer{
			Name:       l.Name,
			Type:       LayerTile,
			Properties: convertProperties(l.Properties),
			Tiles:      make([]uint32, len(l.Tiles)),
		}
		// go-tiled resolves gids to tileset-local ids; restore the global 1-based id
		for i, t := range l.Tiles {
			if t == nil || t.Nil {
				continue
			}
			gid := t.ID
			if t.Tileset != nil {
				gid += t.Tileset.FirstGID
			}
			layer.Tiles[i] = gid
		}
		m.Layers = append(m.Layers, layer)
	}

	for _, g := range tm.ObjectGroups {
		m.Layers = append(m.Layers, Layer{
			Name:       g.Name,
			Type:       LayerObject,
			Properties: convertProperties(g.Properties),
		})
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func convertProperties(props tiled.Properties) []Property {
	out := make([]Property, 0, len(props))
	for _, p := range props {
		if p == nil {
			continue
		}
		out = append(out, Property{Name: p.Name, Type: p.Type, Value: p.Value})
	}
	return out
}
