package screens

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-tilecollide/systems"
	"ebiten-tilecollide/tilemap"
)

// Tileset pairs the tileset spritesheet with the grid it is cut into
type Tileset struct {
	Image *ebiten.Image
	Atlas tilemap.Atlas
}

// NewTileset uploads a decoded tileset image
func NewTileset(img image.Image, atlas tilemap.Atlas) *Tileset {
	return &Tileset{
		Image: ebiten.NewImageFromImage(img),
		Atlas: atlas,
	}
}

// Replay draws a frame's render commands onto target in submission order.
// Tile commands are skipped when tileset is nil.
func Replay(target *ebiten.Image, tileset *Tileset, cmds *systems.RenderCommands) {
	for i := range cmds.Commands {
		c := &cmds.Commands[i]
		switch c.Kind {
		case systems.DrawTile:
			if tileset == nil {
				continue
			}
			tileset.drawTile(target, c)
		case systems.DrawRect:
			vector.DrawFilledRect(target, c.Dst.X, c.Dst.Y, c.Dst.W, c.Dst.H, c.Color, false)
		}
	}
}

func (t *Tileset) drawTile(target *ebiten.Image, c *systems.DrawCommand) {
	src := c.Src
	if src.Empty() {
		return
	}

	op := &ebiten.DrawImageOptions{}
	// Scale the tile to fit the destination cell if it differs from the source size
	op.GeoM.Scale(float64(c.Dst.W)/float64(src.Dx()), float64(c.Dst.H)/float64(src.Dy()))
	op.GeoM.Translate(float64(c.Dst.X), float64(c.Dst.Y))

	target.DrawImage(t.Image.SubImage(src).(*ebiten.Image), op)
}
