package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"ebiten-tilecollide/simulation"
)

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	sim        *simulation.Simulation
	tileset    *Tileset
	bindings   KeyBindings
	dt         float32
	frame      *simulation.FrameResult
	overlays   *ScreenStack
	background color.Color
	logger     *zap.Logger
}

// NewGameScreen creates a game screen that advances sim once per tick
func NewGameScreen(sim *simulation.Simulation, tileset *Tileset, ticksPerSecond, width, height int, logger *zap.Logger) *GameScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ticksPerSecond <= 0 {
		ticksPerSecond = ebiten.DefaultTPS
	}
	return &GameScreen{
		BaseScreen: NewBaseScreen(width, height),
		sim:        sim,
		tileset:    tileset,
		bindings:   DefaultKeyBindings(),
		dt:         1 / float32(ticksPerSecond),
		overlays:   NewScreenStack(),
		background: color.Black,
		logger:     logger,
	}
}

// Update runs one simulation frame unless an overlay is open
func (s *GameScreen) Update() error {
	// An open overlay takes all input and freezes the world
	if s.overlays.Len() > 0 {
		return s.overlays.Update()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.overlays.Push(NewDebugScreen(s.sim.Messages(), s.sim.Collisions))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.overlays.Push(NewPauseScreen())
		return nil
	}

	result, err := s.sim.AdvanceFrame(s.dt, s.bindings.Axes(ebiten.IsKeyPressed))
	if err != nil {
		s.logger.Error("advance frame", zap.Uint64("frame", s.sim.Frame()), zap.Error(err))
		return err
	}
	s.frame = result
	return nil
}

// Draw draws the last simulated frame and any open overlay
func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)

	if s.frame != nil {
		Replay(screen, s.tileset, &s.frame.Commands)
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("Collisions: %d  Frame: %d", s.frame.Collisions.Total, s.frame.Frame), 4, 4)
	}

	s.overlays.Draw(screen)
}
