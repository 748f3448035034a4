package systems

import (
	"image"
	"image/color"

	"ebiten-tilecollide/geom"
)

// DrawKind selects how a DrawCommand is rendered
type DrawKind uint8

const (
	// DrawTile copies Src from the tileset image to Dst
	DrawTile DrawKind = iota
	// DrawRect fills Dst with Color
	DrawRect
)

// DrawCommand is one draw call produced by a system during a frame
type DrawCommand struct {
	Kind   DrawKind
	TileID uint32
	Src    image.Rectangle
	Dst    geom.Rect
	Color  color.RGBA
}

// RenderCommands collects a frame's draw calls in submission order
type RenderCommands struct {
	Commands []DrawCommand
}

// AddTile queues a tileset blit
func (r *RenderCommands) AddTile(id uint32, src image.Rectangle, dst geom.Rect) {
	r.Commands = append(r.Commands, DrawCommand{Kind: DrawTile, TileID: id, Src: src, Dst: dst})
}

// AddRect queues a filled rectangle
func (r *RenderCommands) AddRect(dst geom.Rect, clr color.RGBA) {
	r.Commands = append(r.Commands, DrawCommand{Kind: DrawRect, Dst: dst, Color: clr})
}

// Count returns how many commands of the given kind are queued
func (r *RenderCommands) Count(kind DrawKind) int {
	n := 0
	for _, c := range r.Commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Reset empties the buffer, keeping its capacity
func (r *RenderCommands) Reset() {
	r.Commands = r.Commands[:0]
}
