package components

import "github.com/go-gl/mathgl/mgl32"

// VelocityComponent drives continuous display-space motion in pixels per second
// Only used by the free motion demo, never by grid entities
type VelocityComponent struct {
	Linear mgl32.Vec2
}
