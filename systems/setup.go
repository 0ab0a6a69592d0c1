package systems

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/grid-snake/components"
	"github.com/lixenwraith/grid-snake/config"
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/engine"
)

// SpawnSnake creates the head and body entities and records the chain on the context
// body is ordered from the segment behind the head to the tail
func SpawnSnake(ctx *engine.GameContext, head components.PositionComponent, heading core.Heading, body []components.PositionComponent, headLook, segmentLook engine.Appearance) *engine.SnakeChain {
	if ctx.Chain != nil {
		panic("snake already spawned")
	}

	headEntity := ctx.World.SpawnHead(head, heading, headLook)
	segments := make([]core.Entity, len(body))
	for i, pos := range body {
		segments[i] = ctx.World.SpawnSegment(pos, segmentLook)
	}

	chain := engine.NewSnakeChain(headEntity, segments...)
	ctx.Chain = chain
	ctx.HeadEntity = headEntity

	ctx.Log.Debug().
		Uint64("head", uint64(headEntity)).
		Uint64("tail", uint64(chain.Tail())).
		Int("length", chain.Len()).
		Stringer("heading", heading).
		Msg("snake spawned")
	return chain
}

// Install spawns the initial entities from cfg and registers every system
// cfg must already be validated
func Install(ctx *engine.GameContext, cfg *config.Config, keys KeySampler) error {
	heading, err := cfg.InitialHeading()
	if err != nil {
		return fmt.Errorf("install: %w", err)
	}

	body := make([]components.PositionComponent, len(cfg.Snake.Body))
	for i, cell := range cfg.Snake.Body {
		body[i] = cellPosition(cell)
	}

	chain := SpawnSnake(ctx, cellPosition(cfg.Snake.Head), heading, body,
		appearance(cfg.Look.Head), appearance(cfg.Look.Segment))

	NewFoodSpawner(cfg.Food.Seed).Spawn(ctx, appearance(cfg.Look.Food))

	sched := ctx.Scheduler
	sched.Add(engine.ScheduleUpdate, NewInputSystem(ctx, keys))
	sched.Add(engine.ScheduleFixed, NewSnakeSystem(chain))
	sched.Add(engine.SchedulePostUpdate, NewScaleSystem(ctx))
	sched.Add(engine.SchedulePostUpdate, NewTranslationSystem(ctx))

	if cfg.Demo.Enabled {
		ctx.World.SpawnMover(
			components.Identity(),
			components.VelocityComponent{Linear: mgl32.Vec2(cfg.Demo.Velocity)},
			appearance(cfg.Demo.Look),
		)
		sched.Add(engine.ScheduleUpdate, NewMotionSystem(ctx))
	}

	ctx.Log.Info().
		Int("width", ctx.Arena.Width).
		Int("height", ctx.Arena.Height).
		Dur("tick", sched.TickInterval()).
		Int("entities", ctx.World.EntityCount()).
		Int("frame_systems", len(sched.Systems(engine.ScheduleUpdate))+len(sched.Systems(engine.SchedulePostUpdate))).
		Bool("demo", cfg.Demo.Enabled).
		Msg("game installed")
	return nil
}

// Restart discards the running game and installs a fresh one from cfg
func Restart(ctx *engine.GameContext, cfg *config.Config, keys KeySampler) error {
	ctx.World.Clear()
	ctx.Scheduler.Reset()
	ctx.Chain = nil
	ctx.HeadEntity = core.NoEntity
	ctx.FoodEntity = core.NoEntity

	ctx.Log.Info().Msg("restart")
	return Install(ctx, cfg, keys)
}

func cellPosition(c config.Cell) components.PositionComponent {
	return components.PositionComponent{X: c[0], Y: c[1]}
}

func appearance(l config.TileLook) engine.Appearance {
	return engine.Appearance{
		Size:  components.Square(l.Size),
		Color: components.ColorComponent{R: l.Color[0], G: l.Color[1], B: l.Color[2]},
	}
}
