package tilemap

import (
	"image"

	"github.com/pkg/errors"
)

// Atlas describes the grid of a tileset image
type Atlas struct {
	Width      int // image width in pixels
	Height     int // image height in pixels
	TileWidth  int
	TileHeight int
}

// NewAtlas builds an atlas for a tileset image cut into tiles of the given size
func NewAtlas(width, height, tileWidth, tileHeight int) (Atlas, error) {
	a := Atlas{Width: width, Height: height, TileWidth: tileWidth, TileHeight: tileHeight}
	if tileWidth <= 0 || tileHeight <= 0 {
		return a, errors.Wrapf(ErrInvalidMap, "tileset tile size %dx%d", tileWidth, tileHeight)
	}
	if a.Columns() == 0 || a.Rows() == 0 {
		return a, errors.Wrapf(ErrInvalidMap, "tileset image %dx%d smaller than one tile", width, height)
	}
	return a, nil
}

// Columns returns the number of tiles per row
func (a Atlas) Columns() int {
	if a.TileWidth <= 0 {
		return 0
	}
	return a.Width / a.TileWidth
}

// Rows returns the number of tiles per column
func (a Atlas) Rows() int {
	if a.TileHeight <= 0 {
		return 0
	}
	return a.Height / a.TileHeight
}

// TileCount returns the number of addressable tiles
func (a Atlas) TileCount() int {
	return a.Columns() * a.Rows()
}

// SourceRect returns the region of the tileset image holding the 1-based tile id
func (a Atlas) SourceRect(id uint32) (image.Rectangle, error) {
	if id == 0 || int64(id) > int64(a.TileCount()) {
		return image.Rectangle{}, errors.Wrapf(ErrInvalidTileID, "tile %d outside 1..%d", id, a.TileCount())
	}

	index := int(id - 1)
	cols := a.Columns()
	x := (index % cols) * a.TileWidth
	y := (index / cols) * a.TileHeight
	return image.Rect(x, y, x+a.TileWidth, y+a.TileHeight), nil
}
