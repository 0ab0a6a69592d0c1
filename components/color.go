package components

// ColorComponent is an opaque RGB tint, channels in [0,1]
type ColorComponent struct {
	R, G, B float32
}

// RGB8 returns the color scaled to 8-bit channels
func (c ColorComponent) RGB8() (r, g, b int32) {
	return channel8(c.R), channel8(c.G), channel8(c.B)
}

func channel8(v float32) int32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return int32(v*255 + 0.5)
}
