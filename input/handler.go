package input

import (
	"github.com/gdamore/tcell/v2"
)

// Handler routes terminal events into a key state
type Handler struct {
	state    *KeyState
	bindings *Bindings
	restart  bool
}

// NewHandler creates a handler writing to state
func NewHandler(state *KeyState, bindings *Bindings) *Handler {
	return &Handler{state: state, bindings: bindings}
}

// TakeRestart reports and clears a pending restart request
func (h *Handler) TakeRestart() bool {
	requested := h.restart
	h.restart = false
	return requested
}

// HandleEvent processes a terminal event
// Returns false if the game should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
		return false
	}
	if key.Key() == tcell.KeyRune && (key.Rune() == 'q' || key.Rune() == 'Q') {
		return false
	}

	if key.Key() == tcell.KeyRune && (key.Rune() == 'r' || key.Rune() == 'R') {
		h.restart = true
		return true
	}

	if heading, ok := h.bindings.Lookup(key); ok {
		h.state.Press(heading)
	}
	return true
}
