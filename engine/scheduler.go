package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// MaxCatchUpTicks bounds how many fixed ticks one frame may run
// A longer stall drops the backlog instead of fast-forwarding the snake
const MaxCatchUpTicks = 2

// FrameStats describes one executed frame
type FrameStats struct {
	Delta time.Duration // Wall-clock time since the previous frame
	Ticks int           // Fixed ticks executed in this frame
}

// Scheduler drives the two cadences on the caller's goroutine
// Per-frame systems see the wall-clock delta, fixed systems see the tick interval
// The fixed cadence is accumulator based and independent of the frame rate
type Scheduler struct {
	world        *World
	clock        TimeProvider
	tickInterval time.Duration
	log          zerolog.Logger

	schedules [scheduleCount][]System

	started     bool
	lastFrame   time.Time
	accumulator time.Duration

	frameCount uint64
	tickCount  uint64
}

// NewScheduler creates a scheduler with the given fixed tick interval
func NewScheduler(world *World, clock TimeProvider, tickInterval time.Duration, log zerolog.Logger) *Scheduler {
	if tickInterval <= 0 {
		panic(fmt.Sprintf("tick interval must be positive, got %v", tickInterval))
	}
	return &Scheduler{
		world:        world,
		clock:        clock,
		tickInterval: tickInterval,
		log:          log,
	}
}

// Add registers a system on a schedule and sorts it by priority
func (s *Scheduler) Add(schedule Schedule, system System) {
	if schedule < 0 || schedule >= scheduleCount {
		panic(fmt.Sprintf("invalid schedule %d", int(schedule)))
	}

	list := append(s.schedules[schedule], system)

	// Sort by priority (bubble sort, small N), stable for equal priorities
	for i := 0; i < len(list)-1; i++ {
		for j := 0; j < len(list)-i-1; j++ {
			if list[j].Priority() > list[j+1].Priority() {
				list[j], list[j+1] = list[j+1], list[j]
			}
		}
	}
	s.schedules[schedule] = list
}

// Systems returns a copy of the systems registered on a schedule in run order
func (s *Scheduler) Systems(schedule Schedule) []System {
	result := make([]System, len(s.schedules[schedule]))
	copy(result, s.schedules[schedule])
	return result
}

// TickInterval returns the fixed tick period
func (s *Scheduler) TickInterval() time.Duration {
	return s.tickInterval
}

// FrameCount returns the number of frames executed
func (s *Scheduler) FrameCount() uint64 {
	return s.frameCount
}

// TickCount returns the number of fixed ticks executed
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount
}

// Frame runs one frame: Update systems, every due fixed tick, then PostUpdate systems
// The first frame anchors the clock and runs no fixed tick
func (s *Scheduler) Frame() FrameStats {
	now := s.clock.Now()

	var dt time.Duration
	if s.started {
		dt = now.Sub(s.lastFrame)
		if dt < 0 {
			dt = 0
		}
	}
	s.started = true
	s.lastFrame = now
	s.frameCount++

	s.run(ScheduleUpdate, dt)

	s.accumulator += dt
	due := int(s.accumulator / s.tickInterval)
	if due > MaxCatchUpTicks {
		dropped := due - MaxCatchUpTicks
		s.log.Warn().
			Int("dropped_ticks", dropped).
			Dur("behind", s.accumulator).
			Msg("scheduler fell behind, dropping backlog")
		s.accumulator -= time.Duration(dropped) * s.tickInterval
		due = MaxCatchUpTicks
	}

	for i := 0; i < due; i++ {
		s.run(ScheduleFixed, s.tickInterval)
		s.accumulator -= s.tickInterval
		s.tickCount++
	}

	s.run(SchedulePostUpdate, dt)

	return FrameStats{Delta: dt, Ticks: due}
}

// Reset unregisters every system, re-anchors the clock and clears the backlog and counters
func (s *Scheduler) Reset() {
	s.schedules = [scheduleCount][]System{}
	s.started = false
	s.accumulator = 0
	s.frameCount = 0
	s.tickCount = 0
}

func (s *Scheduler) run(schedule Schedule, dt time.Duration) {
	for _, system := range s.schedules[schedule] {
		system.Update(s.world, dt)
	}
}
