package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-tilecollide/config"
)

// BaseScreen provides the logical resolution shared by all screens
type BaseScreen struct {
	width  int
	height int
}

// NewBaseScreen creates a base screen with a fixed logical size.
// Non-positive sizes fall back to the configured window size.
func NewBaseScreen(width, height int) *BaseScreen {
	if width <= 0 || height <= 0 {
		width, height = config.GetScreenDimensions()
	}
	return &BaseScreen{width: width, height: height}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {}

// Layout implements the Screen interface
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.width, s.height
}

// GetWidth returns the logical screen width
func (s *BaseScreen) GetWidth() int {
	return s.width
}

// GetHeight returns the logical screen height
func (s *BaseScreen) GetHeight() int {
	return s.height
}

// printCentered draws debug text horizontally centered on the target at row y
func printCentered(target *ebiten.Image, text string, y int) {
	// DebugPrint glyphs are 6px wide
	x := (target.Bounds().Dx() - len(text)*6) / 2
	ebitenutil.DebugPrintAt(target, text, x, y)
}
