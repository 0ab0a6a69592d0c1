package systems

import (
	"testing"

	"github.com/lixenwraith/grid-snake/config"
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/engine"
)

func TestInstallDefaultGame(t *testing.T) {
	ctx, _ := newInstalledGame(t, fakeKeys{})

	// head, one segment, food
	if n := ctx.World.EntityCount(); n != 3 {
		t.Errorf("EntityCount() = %d, want 3", n)
	}
	if ctx.MustChain().Tail() != ctx.MustChain().At(1) {
		t.Error("default chain is head plus one segment")
	}
	if n := len(ctx.Scheduler.Systems(engine.ScheduleFixed)); n != 1 {
		t.Errorf("fixed systems = %d, want 1", n)
	}
}

func TestRestartReinstallsFreshGame(t *testing.T) {
	keys := fakeKeys{}
	ctx, clock := newInstalledGame(t, keys)
	cfg := config.Default()
	cfg.Food.Seed = 1

	keys.hold(core.HeadingLeft)
	tick(ctx, clock)
	tick(ctx, clock)
	keys.hold()

	if err := Restart(ctx, cfg, keys); err != nil {
		t.Fatalf("Restart: %v", err)
	}

	if n := ctx.World.EntityCount(); n != 3 {
		t.Errorf("EntityCount() = %d after restart, want 3", n)
	}
	for _, s := range []engine.Schedule{engine.ScheduleUpdate, engine.ScheduleFixed, engine.SchedulePostUpdate} {
		want := 1
		if s == engine.SchedulePostUpdate {
			want = 2
		}
		if n := len(ctx.Scheduler.Systems(s)); n != want {
			t.Errorf("%v systems = %d after restart, want %d", s, n, want)
		}
	}
	if ctx.Scheduler.TickCount() != 0 {
		t.Errorf("TickCount() = %d, want 0", ctx.Scheduler.TickCount())
	}

	head := ctx.MustChain().Head()
	if got := ctx.World.Position(head); got != pos(3, 3) {
		t.Errorf("head = %+v after restart, want (3,3)", got)
	}
	if ctx.World.Heading(head) != core.HeadingUp {
		t.Errorf("heading = %v after restart, want up", ctx.World.Heading(head))
	}

	tick(ctx, clock)
	if got := ctx.World.Position(head); got != pos(3, 4) {
		t.Errorf("head = %+v after one tick, want (3,4)", got)
	}
}
