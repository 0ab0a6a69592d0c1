package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/core"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func anyPressed(s *KeyState) bool {
	for _, h := range core.Headings {
		if s.Pressed(h) {
			return true
		}
	}
	return false
}

func TestKeyStateLatchesUntilClear(t *testing.T) {
	s := NewKeyState()
	if anyPressed(s) {
		t.Fatal("new state must be empty")
	}

	s.Press(core.HeadingLeft)
	s.Press(core.HeadingUp)

	if !s.Pressed(core.HeadingLeft) || !s.Pressed(core.HeadingUp) || s.Pressed(core.HeadingDown) {
		t.Error("unexpected pressed set")
	}

	s.Clear()
	if anyPressed(s) {
		t.Error("Clear must release every direction")
	}
}

func TestHandlerDefaultBindings(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Heading
	}{
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.HeadingLeft},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.HeadingDown},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.HeadingUp},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.HeadingRight},
		{"vi h", runeKey('h'), core.HeadingLeft},
		{"vi k", runeKey('k'), core.HeadingUp},
		{"wasd s", runeKey('s'), core.HeadingDown},
		{"upper D", runeKey('D'), core.HeadingRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewKeyState()
			h := NewHandler(state, DefaultBindings())

			if !h.HandleEvent(tt.ev) {
				t.Fatal("direction key must not quit")
			}
			if !state.Pressed(tt.want) {
				t.Errorf("expected %v pressed", tt.want)
			}
		})
	}
}

func TestHandlerQuitKeys(t *testing.T) {
	quits := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		runeKey('q'),
	}
	for _, ev := range quits {
		h := NewHandler(NewKeyState(), DefaultBindings())
		if h.HandleEvent(ev) {
			t.Errorf("expected %v to quit", ev.Name())
		}
	}
}

func TestHandlerIgnoresUnboundAndNonKeyEvents(t *testing.T) {
	state := NewKeyState()
	h := NewHandler(state, DefaultBindings())

	if !h.HandleEvent(runeKey('z')) {
		t.Error("unbound key must not quit")
	}
	if !h.HandleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("resize must not quit")
	}
	if anyPressed(state) {
		t.Error("no direction should be pressed")
	}
}

func TestBindingsApply(t *testing.T) {
	b := DefaultBindings()
	err := b.Apply(map[string]string{
		"x":     "down",
		"space": "up",
		"F1":    "left",
		"h":     "none",
		"Up":    "none",
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if h, ok := b.Lookup(runeKey('x')); !ok || h != core.HeadingDown {
		t.Errorf("x -> %v, %v", h, ok)
	}
	if h, ok := b.Lookup(runeKey(' ')); !ok || h != core.HeadingUp {
		t.Errorf("space -> %v, %v", h, ok)
	}
	if h, ok := b.Lookup(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)); !ok || h != core.HeadingLeft {
		t.Errorf("F1 -> %v, %v", h, ok)
	}
	if _, ok := b.Lookup(runeKey('h')); ok {
		t.Error("h should be unbound")
	}
	if _, ok := b.Lookup(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)); ok {
		t.Error("Up arrow should be unbound")
	}
	if _, ok := b.Lookup(runeKey('w')); !ok {
		t.Error("untouched defaults must remain")
	}
}

func TestBindingsApplyErrors(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown heading": {"x": "sideways"},
		"unknown key":     {"NotAKey": "up"},
	}
	for name, overrides := range tests {
		t.Run(name, func(t *testing.T) {
			if err := DefaultBindings().Apply(overrides); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestHandlerRestartKey(t *testing.T) {
	state := NewKeyState()
	h := NewHandler(state, DefaultBindings())

	if h.TakeRestart() {
		t.Fatal("no restart requested yet")
	}
	if !h.HandleEvent(runeKey('r')) {
		t.Fatal("restart must not quit")
	}
	if !h.TakeRestart() {
		t.Error("expected restart after r")
	}
	if h.TakeRestart() {
		t.Error("restart request must be consumed once")
	}
	if anyPressed(state) {
		t.Error("restart key must not press a direction")
	}
}
