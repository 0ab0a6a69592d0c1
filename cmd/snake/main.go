package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/grid-snake/components"
	"github.com/lixenwraith/grid-snake/config"
	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/grid"
	"github.com/lixenwraith/grid-snake/input"
	"github.com/lixenwraith/grid-snake/render"
	"github.com/lixenwraith/grid-snake/systems"
)

var (
	configFlag = flag.String("config", "", "path to a TOML config file")
	envFlag    = flag.String("env", ".env", "path to an optional dotenv file")
	seedFlag   = flag.Uint64("seed", 0, "food placement seed, 0 for system entropy")
	tickFlag   = flag.Int("tick", 0, "fixed tick period in milliseconds")
	debugFlag  = flag.Bool("debug", false, "write debug logs to logs/snake.log")
	demoFlag   = flag.Bool("demo", false, "spawn the free motion demo mover")
)

func main() {
	flag.Parse()
	os.Exit(snakeMain())
}

// snakeMain returns the process exit code once every deferred cleanup has run
func snakeMain() int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 2
	}

	log, logFile := setupLogging(cfg.Debug, os.Stderr)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("exit")
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig layers defaults, the TOML file, the environment and explicitly set flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(*envFlag); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Food.Seed = *seedFlag
		case "tick":
			cfg.Timing.TickMS = *tickFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "demo":
			cfg.Demo.Enabled = *demoFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config, log zerolog.Logger) error {
	bindings := input.DefaultBindings()
	if err := bindings.Apply(cfg.Keys); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()

	ctx := engine.NewGameContext(
		grid.NewArena(cfg.Arena.Width, cfg.Arena.Height),
		grid.Surface{Width: constants.SurfaceWidth, Height: constants.SurfaceHeight},
		engine.NewMonotonicTimeProvider(),
		cfg.TickInterval(),
		log,
	)

	keys := input.NewKeyState()
	handler := input.NewHandler(keys, bindings)
	if err := systems.Install(ctx, cfg, keys); err != nil {
		return err
	}

	bg := cfg.Look.Clear
	renderer := render.NewTerminalRenderer(screen, constants.CellCols, constants.CellRows,
		components.ColorComponent{R: bg[0], G: bg[1], B: bg[2]})

	w, h := screen.Size()
	if needW, needH := renderer.RequiredSize(ctx); w < needW || h < needH {
		ctx.Log.Warn().
			Int("width", w).
			Int("height", h).
			Int("need_width", needW).
			Int("need_height", needH).
			Msg("terminal smaller than arena, output is clipped")
	}

	return loop(ctx, cfg, screen, handler, keys, renderer)
}

// loop owns the update goroutine: terminal events latch keys, each frame tick runs the scheduler then draws
// r restarts from cfg
func loop(ctx *engine.GameContext, cfg *config.Config, screen tcell.Screen, handler *input.Handler, keys *input.KeyState, renderer *render.TerminalRenderer) error {
	events := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if !handler.HandleEvent(ev) {
				ctx.Log.Info().
					Uint64("frames", ctx.Scheduler.FrameCount()).
					Uint64("ticks", ctx.Scheduler.TickCount()).
					Msg("quit")
				return nil
			}
			if handler.TakeRestart() {
				keys.Clear()
				if err := systems.Restart(ctx, cfg, keys); err != nil {
					return err
				}
			}

		case <-ticker.C:
			stats := ctx.Scheduler.Frame()
			keys.Clear()
			if stats.Ticks > 0 {
				head := ctx.World.Position(ctx.MustChain().Head())
				ctx.Log.Debug().Int("x", head.X).Int("y", head.Y).Int("ticks", stats.Ticks).Msg("step")
			}
			renderer.RenderFrame(ctx)
		}
	}
}
