package mocks

import (
	"sync"
	"time"

	"github.com/partydeck/partydeck-go/internal/dependencies/scheduler"
)

// MockTimer is a manually fired timer handle
type MockTimer struct {
	Duration time.Duration

	mu      sync.Mutex
	fn      func()
	stopped bool
	fired   bool
}

// Stop cancels the timer; it reports whether the call was prevented
func (t *MockTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// fire runs the callback once, unless stopped. The callback runs without
// the timer lock held so it may schedule further timers.
func (t *MockTimer) fire() bool {
	t.mu.Lock()
	if t.fired || t.stopped {
		t.mu.Unlock()
		return false
	}
	t.fired = true
	fn := t.fn
	t.mu.Unlock()
	fn()
	return true
}

// Ensure MockTimer implements Timer
var _ scheduler.Timer = (*MockTimer)(nil)

// MockScheduler records scheduled callbacks for manual firing in tests
type MockScheduler struct {
	mu     sync.Mutex
	timers []*MockTimer
}

// Ensure MockScheduler implements Scheduler
var _ scheduler.Scheduler = (*MockScheduler)(nil)

// NewMockScheduler creates a new MockScheduler
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

// AfterFunc records the callback and returns its handle; nothing runs
// until the test fires it
func (s *MockScheduler) AfterFunc(d time.Duration, fn func()) scheduler.Timer {
	t := &MockTimer{Duration: d, fn: fn}
	s.mu.Lock()
	s.timers = append(s.timers, t)
	s.mu.Unlock()
	return t
}

// Pending returns the number of timers neither fired nor stopped
func (s *MockScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, t := range s.timers {
		t.mu.Lock()
		if !t.fired && !t.stopped {
			count++
		}
		t.mu.Unlock()
	}
	return count
}

// FireNext fires the oldest pending timer; it reports whether one ran
func (s *MockScheduler) FireNext() bool {
	s.mu.Lock()
	var next *MockTimer
	for _, t := range s.timers {
		t.mu.Lock()
		pending := !t.fired && !t.stopped
		t.mu.Unlock()
		if pending {
			next = t
			break
		}
	}
	s.mu.Unlock()
	if next == nil {
		return false
	}
	return next.fire()
}

// FireAll fires every pending timer in schedule order, including timers
// scheduled by the fired callbacks themselves
func (s *MockScheduler) FireAll() {
	for s.FireNext() {
	}
}
