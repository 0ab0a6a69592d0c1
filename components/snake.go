package components

import "github.com/lixenwraith/grid-snake/core"

// HeadComponent marks the snake head (singleton)
// Heading is the direction committed by input, Stepped the direction of the last step taken
type HeadComponent struct {
	Heading core.Heading
	Stepped core.Heading
}

// SegmentComponent tags an entity as part of the snake body, head included
type SegmentComponent struct{}
