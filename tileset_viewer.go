package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-tilecollide/screens"
)

// TilesetViewer shows every tile of the tileset labelled with its map tile id
type TilesetViewer struct {
	tileset       *screens.Tileset
	filename      string
	cellSize      int
	displayWidth  int // Tiles shown horizontally
	displayHeight int // Tiles shown vertically
	offsetRow     int
	screenWidth   int
	screenHeight  int
}

// NewTilesetViewer creates a viewer drawing each tile into a cellSize square
func NewTilesetViewer(tileset *screens.Tileset, filename string, cellSize int) *TilesetViewer {
	displayWidth := min(tileset.Atlas.Columns(), 16)
	displayHeight := 12

	return &TilesetViewer{
		tileset:       tileset,
		filename:      filename,
		cellSize:      cellSize,
		displayWidth:  displayWidth,
		displayHeight: displayHeight,
		screenWidth:   max(displayWidth*cellSize+20, 400),
		screenHeight:  displayHeight*cellSize + 120, // Header and footer
	}
}

// Update scrolls by row; ESC quits
func (t *TilesetViewer) Update() error {
	rows := t.tileset.Atlas.Rows()
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && t.offsetRow < rows-t.displayHeight {
		t.offsetRow++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && t.offsetRow > 0 {
		t.offsetRow--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		t.offsetRow = max(min(t.offsetRow+t.displayHeight, rows-t.displayHeight), 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		t.offsetRow = max(t.offsetRow-t.displayHeight, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw displays the visible tiles with their ids
func (t *TilesetViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 30, 255})

	atlas := t.tileset.Atlas
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Tileset: %s", t.filename), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Size: %dx%d tiles of %dx%d px", atlas.Columns(), atlas.Rows(), atlas.TileWidth, atlas.TileHeight), 10, 30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Rows %d-%d of %d", t.offsetRow+1, min(t.offsetRow+t.displayHeight, atlas.Rows()), atlas.Rows()), 10, 50)

	for y := 0; y < t.displayHeight; y++ {
		for x := 0; x < t.displayWidth; x++ {
			// Map tile ids are 1-based and row-major over the atlas
			id := uint32((y+t.offsetRow)*atlas.Columns() + x + 1)
			src, err := atlas.SourceRect(id)
			if err != nil {
				continue
			}

			screenX := 10 + x*t.cellSize
			screenY := 80 + y*t.cellSize
			vector.DrawFilledRect(screen, float32(screenX), float32(screenY),
				float32(t.cellSize-2), float32(t.cellSize-2), color.RGBA{60, 60, 60, 255}, false)

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(t.cellSize-2)/float64(src.Dx()), float64(t.cellSize-2)/float64(src.Dy()))
			op.GeoM.Translate(float64(screenX), float64(screenY))
			screen.DrawImage(t.tileset.Image.SubImage(src).(*ebiten.Image), op)

			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", id), screenX+2, screenY+t.cellSize-16)
		}
	}

	ebitenutil.DebugPrintAt(screen, "ESC: Quit | Up/Down: Scroll | Page Up/Down: Page", 10, t.screenHeight-20)
}

// Layout implements ebiten.Game's Layout.
func (t *TilesetViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return t.screenWidth, t.screenHeight
}
