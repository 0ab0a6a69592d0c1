package systems

import (
	"time"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/engine"
)

// MotionSystem integrates continuous velocity with the frame delta
// Entities leaving the surface bounce back off its edge
type MotionSystem struct {
	ctx *engine.GameContext
}

// NewMotionSystem creates the free motion integrator
func NewMotionSystem(ctx *engine.GameContext) *MotionSystem {
	return &MotionSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *MotionSystem) Priority() int {
	return constants.PriorityMotion
}

// Update applies translation += velocity * dt
func (s *MotionSystem) Update(world *engine.World, dt time.Duration) {
	seconds := float32(dt.Seconds())
	halfW, halfH := s.ctx.Surface.Width/2, s.ctx.Surface.Height/2

	for _, e := range world.Velocities.All() {
		transform, ok := world.Transforms.Get(e)
		if !ok {
			continue
		}
		velocity := world.Velocities.MustGet(e)

		transform.Translation = transform.Translation.Add(velocity.Linear.Vec3(0).Mul(seconds))

		bounced := false
		if t := transform.Translation.X(); (t > halfW && velocity.Linear[0] > 0) || (t < -halfW && velocity.Linear[0] < 0) {
			velocity.Linear[0] = -velocity.Linear[0]
			bounced = true
		}
		if t := transform.Translation.Y(); (t > halfH && velocity.Linear[1] > 0) || (t < -halfH && velocity.Linear[1] < 0) {
			velocity.Linear[1] = -velocity.Linear[1]
			bounced = true
		}
		if bounced {
			world.Velocities.Add(e, velocity)
		}

		world.Transforms.Add(e, transform)
	}
}
