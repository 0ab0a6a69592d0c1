package systems

import (
	"time"

	"github.com/lixenwraith/grid-snake/components"
	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/engine"
)

// SnakeSystem advances the chain one cell per fixed tick
// Every body slot takes the position its predecessor held before the step
type SnakeSystem struct {
	chain    *engine.SnakeChain
	snapshot []components.PositionComponent
}

// NewSnakeSystem creates the stepping system for chain
func NewSnakeSystem(chain *engine.SnakeChain) *SnakeSystem {
	return &SnakeSystem{
		chain:    chain,
		snapshot: make([]components.PositionComponent, chain.Len()),
	}
}

// Priority returns the system's priority
func (s *SnakeSystem) Priority() int {
	return constants.PrioritySnake
}

// Update performs one step
func (s *SnakeSystem) Update(world *engine.World, dt time.Duration) {
	n := s.chain.Len()
	if cap(s.snapshot) < n {
		s.snapshot = make([]components.PositionComponent, n)
	}
	s.snapshot = s.snapshot[:n]

	// Capture before any write so followers read pre-step positions
	for i := 0; i < n; i++ {
		s.snapshot[i] = world.Position(s.chain.At(i))
	}

	head := s.chain.Head()
	heading := world.Heading(head)
	dx, dy := heading.Delta()
	world.SetPosition(head, s.snapshot[0].Offset(dx, dy))
	world.RecordStep(head, heading)

	for i := 1; i < n; i++ {
		world.SetPosition(s.chain.At(i), s.snapshot[i-1])
	}
}
