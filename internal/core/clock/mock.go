package clock

import (
	"sort"
	"sync"
	"time"
)

// Mock is a manually advanced Clock for tests. Timers scheduled with AfterFunc
// fire synchronously from Advance once their due time is reached.
type Mock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*mockTimer
}

// NewMock returns a Mock frozen at the given instant.
func NewMock(now time.Time) *Mock {
	return &Mock{now: now}
}

// Now returns the mock's current instant.
func (mock *Mock) Now() time.Time {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.now
}

// AfterFunc registers a callback to fire when the mock is advanced past d.
func (mock *Mock) AfterFunc(d time.Duration, f func()) Timer {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	timer := &mockTimer{mock: mock, at: mock.now.Add(d), fn: f}
	mock.timers = append(mock.timers, timer)
	return timer
}

// Advance moves the clock forward and fires any due timers in order.
func (mock *Mock) Advance(d time.Duration) {
	mock.mu.Lock()
	mock.now = mock.now.Add(d)
	now := mock.now

	var due []*mockTimer
	var pending []*mockTimer
	for _, timer := range mock.timers {
		if !timer.stopped && !timer.at.After(now) {
			due = append(due, timer)
			continue
		}
		pending = append(pending, timer)
	}
	mock.timers = pending
	sort.Slice(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	mock.mu.Unlock()

	// Callbacks run outside the lock so they may schedule or stop timers.
	for _, timer := range due {
		timer.fn()
	}
}

type mockTimer struct {
	mock    *Mock
	at      time.Time
	fn      func()
	stopped bool
}

func (timer *mockTimer) Stop() bool {
	timer.mock.mu.Lock()
	defer timer.mock.mu.Unlock()
	if timer.stopped {
		return false
	}
	for _, pending := range timer.mock.timers {
		if pending == timer {
			timer.stopped = true
			return true
		}
	}
	return false
}
