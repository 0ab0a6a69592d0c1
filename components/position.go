package components

// PositionComponent is a grid cell, 0-based, never clamped to the arena
type PositionComponent struct {
	X, Y int
}

// Offset returns the position moved by (dx, dy)
func (p PositionComponent) Offset(dx, dy int) PositionComponent {
	return PositionComponent{X: p.X + dx, Y: p.Y + dy}
}
