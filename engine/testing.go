package engine

import (
	"time"

	"github.com/lixenwraith/grid-snake/grid"
	"github.com/rs/zerolog"
)

// NewTestGameContext creates a minimal GameContext for testing driven by a mock clock
// The returned mock starts at a fixed date so runs are reproducible
func NewTestGameContext(width, height int, tickInterval time.Duration) (*GameContext, *MockTimeProvider) {
	clock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := NewGameContext(
		grid.NewArena(width, height),
		grid.Surface{Width: 500, Height: 500},
		clock,
		tickInterval,
		zerolog.Nop(),
	)
	return ctx, clock
}
