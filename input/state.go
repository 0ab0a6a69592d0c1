package input

import "github.com/lixenwraith/grid-snake/core"

// KeyState latches direction presses between samples
// Terminals report presses and repeats but no releases, so a press counts as held
// until the frame that sampled it calls Clear
type KeyState struct {
	pressed [len(core.Headings)]bool
}

// NewKeyState creates a key state with nothing pressed
func NewKeyState() *KeyState {
	return &KeyState{}
}

// Press marks a direction as held
func (s *KeyState) Press(h core.Heading) {
	s.pressed[h] = true
}

// Pressed reports whether a direction is held
func (s *KeyState) Pressed(h core.Heading) bool {
	return s.pressed[h]
}

// Clear releases every direction
func (s *KeyState) Clear() {
	s.pressed = [len(core.Headings)]bool{}
}
