package components

import "github.com/go-gl/mathgl/mgl32"

// TransformComponent is the derived display-space placement of an entity
// Translation is the tile center (z = 0), Scale is the pixel footprint (z = 1)
type TransformComponent struct {
	Translation mgl32.Vec3
	Scale       mgl32.Vec3
}

// Identity returns a transform at the origin with unit scale
func Identity() TransformComponent {
	return TransformComponent{Scale: mgl32.Vec3{1, 1, 1}}
}
