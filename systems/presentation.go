package systems

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/grid"
)

// ScaleSystem sizes every tile transform to its footprint on the surface
// It writes only transforms and is idempotent
type ScaleSystem struct {
	ctx *engine.GameContext
}

// NewScaleSystem creates the scale pass
func NewScaleSystem(ctx *engine.GameContext) *ScaleSystem {
	return &ScaleSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *ScaleSystem) Priority() int {
	return constants.PriorityScale
}

// Update recomputes scale = size * surface / extent per axis
func (s *ScaleSystem) Update(world *engine.World, dt time.Duration) {
	arena, surface := s.ctx.Arena, s.ctx.Surface

	for _, e := range world.Sizes.All() {
		transform, ok := world.Transforms.Get(e)
		if !ok {
			continue
		}
		size := world.Sizes.MustGet(e)
		transform.Scale = mgl32.Vec3{
			size.Width * grid.TileSize(surface.Width, arena.Width),
			size.Height * grid.TileSize(surface.Height, arena.Height),
			1,
		}
		world.Transforms.Add(e, transform)
	}
}

// TranslationSystem centers every grid entity's transform on its cell
// It writes only transforms and is idempotent
type TranslationSystem struct {
	ctx *engine.GameContext
}

// NewTranslationSystem creates the position pass
func NewTranslationSystem(ctx *engine.GameContext) *TranslationSystem {
	return &TranslationSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *TranslationSystem) Priority() int {
	return constants.PriorityTranslation
}

// Update maps each grid position to display space
func (s *TranslationSystem) Update(world *engine.World, dt time.Duration) {
	arena, surface := s.ctx.Arena, s.ctx.Surface

	for _, e := range world.Positions.All() {
		transform, ok := world.Transforms.Get(e)
		if !ok {
			continue
		}
		pos := world.Positions.MustGet(e)
		x, y := arena.CellToDisplay(pos.X, pos.Y, surface)
		transform.Translation = mgl32.Vec3{x, y, 0}
		world.Transforms.Add(e, transform)
	}
}
