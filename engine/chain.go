package engine

import (
	"fmt"

	"github.com/lixenwraith/grid-snake/core"
)

// SnakeChain is the ordered list of segment identities, head first, tail last
// Slots never reorder: a step only rewrites the positions behind the identities
type SnakeChain struct {
	segments []core.Entity
}

// NewSnakeChain builds a chain from the head and at least one trailing segment
func NewSnakeChain(head core.Entity, body ...core.Entity) *SnakeChain {
	if len(body) == 0 {
		panic("snake chain needs at least two segments")
	}
	segments := make([]core.Entity, 0, len(body)+1)
	segments = append(segments, head)
	segments = append(segments, body...)

	seen := make(map[core.Entity]struct{}, len(segments))
	for _, e := range segments {
		if _, dup := seen[e]; dup {
			panic(fmt.Sprintf("entity %d appears twice in snake chain", e))
		}
		seen[e] = struct{}{}
	}
	return &SnakeChain{segments: segments}
}

// Head returns the entity in slot 0
func (c *SnakeChain) Head() core.Entity {
	return c.segments[0]
}

// Tail returns the entity in the last slot
func (c *SnakeChain) Tail() core.Entity {
	return c.segments[len(c.segments)-1]
}

// Len returns the number of slots
func (c *SnakeChain) Len() int {
	return len(c.segments)
}

// At returns the entity in slot i
func (c *SnakeChain) At(i int) core.Entity {
	return c.segments[i]
}
