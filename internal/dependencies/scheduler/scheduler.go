package scheduler

import "time"

// Timer is a handle to a pending scheduled call
type Timer interface {
	// Stop cancels the timer; it reports whether the call was prevented
	// from running
	Stop() bool
}

// Scheduler provides deferred execution that can be mocked for testing
type Scheduler interface {
	// AfterFunc calls fn on its own goroutine after d has elapsed
	AfterFunc(d time.Duration, fn func()) Timer
}

// RealScheduler implements Scheduler using the runtime timer heap
type RealScheduler struct{}

// New creates a new RealScheduler
func New() *RealScheduler {
	return &RealScheduler{}
}

// AfterFunc schedules fn after d
func (s *RealScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
