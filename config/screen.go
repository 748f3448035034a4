package config

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 16

	// Window dimensions in tiles
	ScreenWidth  = 40
	ScreenHeight = 40

	// Window dimensions in pixels (derived from tile dimensions)
	WindowWidth  = ScreenWidth * TileSize
	WindowHeight = ScreenHeight * TileSize

	// Simulation rate
	TicksPerSecond = 60

	// Upper bound for a single frame's delta time in seconds
	MaxFrameDelta = 0.25
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}
