package systems

import (
	"testing"

	"github.com/lixenwraith/grid-snake/core"
)

func TestResolveHeadingPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		pressed []core.Heading
		want    core.Heading
		wantOK  bool
	}{
		{"none", nil, 0, false},
		{"single up", []core.Heading{core.HeadingUp}, core.HeadingUp, true},
		{"left beats right", []core.Heading{core.HeadingRight, core.HeadingLeft}, core.HeadingLeft, true},
		{"down beats up", []core.Heading{core.HeadingUp, core.HeadingDown}, core.HeadingDown, true},
		{"up beats right", []core.Heading{core.HeadingRight, core.HeadingUp}, core.HeadingUp, true},
		{"left beats all", []core.Heading{core.HeadingRight, core.HeadingUp, core.HeadingDown, core.HeadingLeft}, core.HeadingLeft, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := fakeKeys{}
			keys.hold(tt.pressed...)

			got, ok := ResolveHeading(keys)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("ResolveHeading() = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestInputSystemRejectsOppositeOfStep(t *testing.T) {
	tests := []struct {
		current core.Heading
		pressed core.Heading
		want    core.Heading
	}{
		{core.HeadingUp, core.HeadingDown, core.HeadingUp},
		{core.HeadingDown, core.HeadingUp, core.HeadingDown},
		{core.HeadingLeft, core.HeadingRight, core.HeadingLeft},
		{core.HeadingRight, core.HeadingLeft, core.HeadingRight},
		{core.HeadingUp, core.HeadingLeft, core.HeadingLeft},
		{core.HeadingLeft, core.HeadingUp, core.HeadingUp},
	}

	for _, tt := range tests {
		t.Run(tt.current.String()+"_"+tt.pressed.String(), func(t *testing.T) {
			keys := fakeKeys{}
			ctx, _ := newInstalledGame(t, keys)
			ctx.World.SetHeading(ctx.HeadEntity, tt.current)
			ctx.World.RecordStep(ctx.HeadEntity, tt.current)

			keys.hold(tt.pressed)
			NewInputSystem(ctx, keys).Update(ctx.World, 0)

			if got := ctx.World.Heading(ctx.HeadEntity); got != tt.want {
				t.Errorf("heading = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInputSystemChecksLastStepNotPendingTurn(t *testing.T) {
	tests := []struct {
		name    string
		pending core.Heading
		pressed core.Heading
		want    core.Heading
	}{
		{"reverse of step rejected", core.HeadingLeft, core.HeadingDown, core.HeadingLeft},
		{"reverse of pending accepted", core.HeadingLeft, core.HeadingRight, core.HeadingRight},
		{"back to step heading", core.HeadingLeft, core.HeadingUp, core.HeadingUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := fakeKeys{}
			ctx, _ := newInstalledGame(t, keys)
			// Last step was Up, a turn is pending
			ctx.World.SetHeading(ctx.HeadEntity, tt.pending)

			keys.hold(tt.pressed)
			NewInputSystem(ctx, keys).Update(ctx.World, 0)

			if got := ctx.World.Heading(ctx.HeadEntity); got != tt.want {
				t.Errorf("heading = %v, want %v", got, tt.want)
			}
		})
	}
}
