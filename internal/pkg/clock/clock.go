package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Today truncates now to a UTC calendar date, the granularity stay
// periods are compared at.
func Today(c Clock) time.Time {
	now := c.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
