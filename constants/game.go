package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the fixed tick period of the snake step
	GameUpdateInterval = 150 * time.Millisecond
)

// Arena and Window Constants
const (
	// ArenaWidth is the number of grid columns
	ArenaWidth = 10

	// ArenaHeight is the number of grid rows
	ArenaHeight = 10

	// SurfaceWidth is the logical display surface width in pixels
	SurfaceWidth = 500

	// SurfaceHeight is the logical display surface height in pixels
	SurfaceHeight = 500

	// WindowTitle is shown in the status line
	WindowTitle = "Snake Game"
)
