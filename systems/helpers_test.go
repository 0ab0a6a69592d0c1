package systems

import (
	"testing"

	"github.com/lixenwraith/grid-snake/components"
	"github.com/lixenwraith/grid-snake/config"
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/engine"
)

// fakeKeys reports the headings present in the set as pressed
type fakeKeys map[core.Heading]bool

func (k fakeKeys) Pressed(h core.Heading) bool {
	return k[h]
}

func (k fakeKeys) hold(hs ...core.Heading) {
	for h := range k {
		delete(k, h)
	}
	for _, h := range hs {
		k[h] = true
	}
}

// newInstalledGame returns a default game with a seeded food source, driven by a mock clock
func newInstalledGame(t *testing.T, keys KeySampler) (*engine.GameContext, *engine.MockTimeProvider) {
	t.Helper()
	cfg := config.Default()
	cfg.Food.Seed = 1

	ctx, clock := engine.NewTestGameContext(cfg.Arena.Width, cfg.Arena.Height, cfg.TickInterval())
	if err := Install(ctx, cfg, keys); err != nil {
		t.Fatalf("Install: %v", err)
	}
	return ctx, clock
}

// tick runs frames until exactly one more fixed tick has executed
func tick(ctx *engine.GameContext, clock *engine.MockTimeProvider) {
	if ctx.Scheduler.FrameCount() == 0 {
		ctx.Scheduler.Frame()
	}
	clock.Advance(ctx.Scheduler.TickInterval())
	ctx.Scheduler.Frame()
}

func pos(x, y int) components.PositionComponent {
	return components.PositionComponent{X: x, Y: y}
}

