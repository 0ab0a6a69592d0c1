package engine

import "time"

// System is an interface that all systems must implement
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// Schedule selects the cadence a system runs on
type Schedule int

const (
	// ScheduleUpdate runs once per frame before any fixed tick
	ScheduleUpdate Schedule = iota
	// ScheduleFixed runs once per elapsed tick interval, dt is always the interval
	ScheduleFixed
	// SchedulePostUpdate runs once per frame after all fixed ticks
	SchedulePostUpdate

	scheduleCount
)

// String returns the schedule name
func (s Schedule) String() string {
	switch s {
	case ScheduleUpdate:
		return "Update"
	case ScheduleFixed:
		return "Fixed"
	case SchedulePostUpdate:
		return "PostUpdate"
	default:
		return "Unknown"
	}
}
