package systems

import (
	"math/rand/v2"

	"github.com/lixenwraith/grid-snake/components"
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/grid"
)

// FoodSpawner places food on a uniformly random cell
// Placement does not avoid the snake
type FoodSpawner struct {
	rng *rand.Rand
}

// NewFoodSpawner creates a spawner with a PCG source
// Seed 0 draws the seed from system entropy
func NewFoodSpawner(seed uint64) *FoodSpawner {
	if seed == 0 {
		return NewFoodSpawnerFrom(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return NewFoodSpawnerFrom(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewFoodSpawnerFrom creates a spawner drawing from src
func NewFoodSpawnerFrom(src rand.Source) *FoodSpawner {
	return &FoodSpawner{rng: rand.New(src)}
}

// Cell returns a cell in [0,W)x[0,H)
func (f *FoodSpawner) Cell(arena grid.Arena) components.PositionComponent {
	return components.PositionComponent{
		X: f.rng.IntN(arena.Width),
		Y: f.rng.IntN(arena.Height),
	}
}

// Spawn creates the food entity and records it on the context
// A food already on the board is removed first, so at most one exists
func (f *FoodSpawner) Spawn(ctx *engine.GameContext, look engine.Appearance) core.Entity {
	if ctx.FoodEntity != core.NoEntity && ctx.World.Exists(ctx.FoodEntity) {
		ctx.World.DestroyEntity(ctx.FoodEntity)
	}

	pos := f.Cell(ctx.Arena)
	food := ctx.World.SpawnFood(pos, look)
	ctx.FoodEntity = food

	ctx.Log.Debug().
		Uint64("entity", uint64(food)).
		Int("x", pos.X).
		Int("y", pos.Y).
		Msg("food spawned")
	return food
}
