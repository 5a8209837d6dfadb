package clock

import "time"

// Clock provides the current time so registration order and cache expiry can
// be controlled in tests
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

// New returns the system clock
func New() System {
	return System{}
}

// Now returns the current time
func (System) Now() time.Time {
	return time.Now()
}
