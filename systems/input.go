package systems

import (
	"time"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/engine"
)

// KeySampler reports whether a direction key is held for the current frame
type KeySampler interface {
	Pressed(h core.Heading) bool
}

// When several keys are held the first match in this order wins
var inputPrecedence = [4]core.Heading{
	core.HeadingLeft,
	core.HeadingDown,
	core.HeadingUp,
	core.HeadingRight,
}

// ResolveHeading returns the highest-precedence pressed direction
// ok is false when no direction key is pressed
func ResolveHeading(keys KeySampler) (h core.Heading, ok bool) {
	for _, candidate := range inputPrecedence {
		if keys.Pressed(candidate) {
			return candidate, true
		}
	}
	return 0, false
}

// InputSystem commits the sampled direction to the head once per frame
// A reversal of the last step is ignored, no key keeps the current heading
// Several turns between ticks coalesce and the step uses the latest one
type InputSystem struct {
	ctx  *engine.GameContext
	keys KeySampler
}

// NewInputSystem creates an input system reading from keys
func NewInputSystem(ctx *engine.GameContext, keys KeySampler) *InputSystem {
	return &InputSystem{ctx: ctx, keys: keys}
}

// Priority returns the system's priority
func (s *InputSystem) Priority() int {
	return constants.PriorityInput
}

// Update samples the keys and writes the resolved heading
func (s *InputSystem) Update(world *engine.World, dt time.Duration) {
	candidate, ok := ResolveHeading(s.keys)
	if !ok {
		return
	}

	head := s.ctx.HeadEntity
	current := world.Heading(head)
	// Checked against the step, not the pending turn, so two quarter turns cannot fold back
	if candidate == current || candidate == world.SteppedHeading(head).Opposite() {
		return
	}

	world.SetHeading(head, candidate)
	s.ctx.Log.Debug().
		Stringer("from", current).
		Stringer("to", candidate).
		Msg("heading changed")
}
