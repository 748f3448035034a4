package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModalScreen represents a popup window that appears on top of other screens.
// Any of its close keys dismisses it.
type ModalScreen struct {
	*BaseScreen
	title      string
	content    string
	width      int
	height     int
	closeKeys  []ebiten.Key
	background color.Color
}

// NewModalScreen creates a new modal screen
func NewModalScreen(title, content string, width, height int, closeKeys ...ebiten.Key) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(0, 0),
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		closeKeys:  closeKeys,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
	}
}

// NewPauseScreen creates the modal shown while play is paused
func NewPauseScreen() *ModalScreen {
	return NewModalScreen("PAUSED", "Press Start to Resume", 200, 60, ebiten.KeyEnter, ebiten.KeyP)
}

// Update implements the Screen interface
func (s *ModalScreen) Update() error {
	for _, key := range s.closeKeys {
		if inpututil.IsKeyJustPressed(key) {
			return ErrCloseScreen
		}
	}
	return nil
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := float32(bounds.Dx()-s.width) / 2
	y := float32(bounds.Dy()-s.height) / 2

	vector.DrawFilledRect(screen, x, y, float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(s.width), float32(s.height), 1, color.White, false)

	titleX := int(x) + (s.width-len(s.title)*6)/2 // Approximate text width
	ebitenutil.DebugPrintAt(screen, s.title, titleX, int(y)+10)
	ebitenutil.DebugPrintAt(screen, s.content, int(x)+10, int(y)+30)
}

// Layout implements the Screen interface
func (s *ModalScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
