package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-tilecollide/systems"
)

// DebugScreen shows the collision message log in a modal window
type DebugScreen struct {
	*BaseScreen
	log          *systems.MessageLog
	counter      func() uint64
	scrollOffset int
	width        int
	height       int
	background   color.Color
}

// NewDebugScreen creates a new debug screen over log. counter reports the
// running collision total shown in the title.
func NewDebugScreen(log *systems.MessageLog, counter func() uint64) *DebugScreen {
	return &DebugScreen{
		BaseScreen: NewBaseScreen(0, 0),
		log:        log,
		counter:    counter,
		width:      560,
		height:     400,
		background: color.RGBA{0, 0, 0, 255}, // Solid black
	}
}

// Update handles input for the debug screen
func (s *DebugScreen) Update() error {
	// Handle scrolling through messages with arrow keys
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && s.scrollOffset > 0 {
		s.scrollOffset--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && s.scrollOffset < len(s.log.Messages)-1 {
		s.scrollOffset++
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}
	return nil
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	width := min(s.width, bounds.Dx())
	height := min(s.height, bounds.Dy())
	x := (bounds.Dx() - width) / 2
	y := (bounds.Dy() - height) / 2

	modal := ebiten.NewImage(width, height)
	modal.Fill(s.background)
	vector.StrokeRect(modal, 1, 1, float32(width-2), float32(height-2), 2, color.White, false)

	title := fmt.Sprintf("COLLISION LOG (%d total)", s.counter())
	printCentered(modal, title, 6)

	// Newest message first
	messages := s.log.RecentMessages(len(s.log.Messages))
	startY := 30
	lineHeight := 16
	maxLines := (height - startY - 24) / lineHeight

	startIdx := s.scrollOffset
	if startIdx > len(messages)-maxLines {
		startIdx = max(len(messages)-maxLines, 0)
	}

	line := ebiten.NewImage(width, lineHeight)
	defer line.Deallocate()
	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		msg := messages[startIdx+i]
		line.Clear()
		ebitenutil.DebugPrintAt(line, msg.Text, 10, 0)

		// Tint the white debug glyphs with the message's color
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleWithColor(msg.GetColor())
		op.GeoM.Translate(0, float64(startY+i*lineHeight))
		modal.DrawImage(line, op)
	}

	// Draw scroll indicator if needed
	if len(messages) > maxLines {
		track := float32(height - startY - 24)
		barHeight := float32(maxLines) / float32(len(messages)) * track
		barY := float32(startY) + float32(startIdx)/float32(len(messages))*track
		vector.DrawFilledRect(modal, float32(width-10), barY, 5, barHeight, color.White, false)
	}

	ebitenutil.DebugPrintAt(modal, "Up/Down: Scroll  ESC/F1: Close", 10, height-20)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(modal, op)
	modal.Deallocate()
}

// Layout implements the Screen interface
func (s *DebugScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
