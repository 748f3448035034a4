package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StartScreen waits for the player to start the game
type StartScreen struct {
	*BaseScreen
	title      string
	background color.Color
}

// NewStartScreen creates a new start screen
func NewStartScreen(title string, width, height int) *StartScreen {
	return &StartScreen{
		BaseScreen: NewBaseScreen(width, height),
		title:      title,
		background: color.RGBA{20, 20, 28, 255},
	}
}

// Update returns ErrNewGame on Enter and ErrQuit on Escape
func (s *StartScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return ErrNewGame
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	return nil
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)

	centerY := screen.Bounds().Dy() / 2
	printCentered(screen, s.title, centerY-30)
	printCentered(screen, "Press Start to Begin Play", centerY)
	printCentered(screen, "WASD / Arrows: Move  P: Pause  F1: Log", centerY+30)
}
