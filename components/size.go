package components

// SizeComponent is the visual footprint of an entity as a fraction of one grid cell
// Set once at spawn, only read afterwards
type SizeComponent struct {
	Width, Height float32
}

// Square returns a size with equal width and height
func Square(value float32) SizeComponent {
	return SizeComponent{Width: value, Height: value}
}
