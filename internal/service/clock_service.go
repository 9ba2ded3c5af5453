package service

import "time"

// Clock supplies the instant the office hours are evaluated at.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// Now returns time.Now.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// FixedClock returns a Clock that always reads t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
