package engine

import "time"

// MockTimeProvider is a manually advanced clock for driving the scheduler in tests
// It is read and advanced from the test goroutine only
type MockTimeProvider struct {
	start time.Time
	now   time.Time
}

// NewMockTimeProvider creates a mock clock reading start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start, now: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.now
}

// SetTime jumps the clock, which may move it backwards
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.now = t
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// Elapsed returns the time advanced since creation
func (m *MockTimeProvider) Elapsed() time.Duration {
	return m.now.Sub(m.start)
}
