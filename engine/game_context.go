package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/grid"
	"github.com/rs/zerolog"
)

// GameContext holds all game state including the ECS world
// It is the explicit container threaded through setup and systems, no package globals
type GameContext struct {
	// ECS World
	World *World

	// Two-cadence scheduler bound to World
	Scheduler *Scheduler

	// Time provider (monotonic clock in production, mock in tests)
	TimeProvider TimeProvider

	// Arena extents and display surface
	Arena   grid.Arena
	Surface grid.Surface

	// Snake chain, set once by the spawn step
	Chain *SnakeChain

	// Singleton references, NoEntity until spawned
	HeadEntity core.Entity
	FoodEntity core.Entity

	// Session identity for log correlation
	SessionID string
	Log       zerolog.Logger
}

// NewGameContext creates a new game context with an empty world and scheduler
func NewGameContext(arena grid.Arena, surface grid.Surface, timeProvider TimeProvider, tickInterval time.Duration, log zerolog.Logger) *GameContext {
	sessionID := uuid.NewString()
	log = log.With().Str("session", sessionID).Logger()

	world := NewWorld()

	return &GameContext{
		World:        world,
		Scheduler:    NewScheduler(world, timeProvider, tickInterval, log),
		TimeProvider: timeProvider,
		Arena:        arena,
		Surface:      surface,
		SessionID:    sessionID,
		Log:          log,
	}
}

// MustChain returns the snake chain, panicking if the snake was not spawned yet
func (g *GameContext) MustChain() *SnakeChain {
	if g.Chain == nil {
		panic("snake chain accessed before spawn")
	}
	return g.Chain
}
