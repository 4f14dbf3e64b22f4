// Package ticker runs the countdown poll loop on its own goroutine, isolated
// from UI work. Each poll recomputes the remaining time from the absolute
// deadline, so completion is detected correctly even if polls were delayed.
package ticker

import (
	"sync"
	"time"

	"focusbell/internal/core/clock"
)

// EventType defines the type of ticker event.
type EventType string

const (
	EventTick     EventType = "tick"
	EventComplete EventType = "complete"
)

// Event is delivered to the engine roughly once per second while polling.
// Deadline identifies the run that produced the event so consumers can
// discard events from a replaced run.
type Event struct {
	Type      EventType
	Remaining time.Duration
	Deadline  time.Time
	At        time.Time
}

// Ticker polls a deadline and emits tick events plus exactly one complete
// event per started run. Start and Stop are idempotent; Start atomically
// replaces any previous poll loop.
type Ticker struct {
	mu       sync.Mutex
	clock    clock.Clock
	interval time.Duration
	events   chan Event
	stopCh   chan struct{}
	running  bool
}

// New creates a Ticker. A zero interval defaults to one second.
func New(clk clock.Clock, interval time.Duration) *Ticker {
	if clk == nil {
		clk = clock.New()
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{
		clock:    clk,
		interval: interval,
		events:   make(chan Event, 8),
	}
}

// Events returns the channel on which tick and complete events arrive. The
// channel is shared across runs and never closed by the ticker.
func (ticker *Ticker) Events() <-chan Event {
	return ticker.events
}

// Start begins polling against the given deadline, replacing any active run.
func (ticker *Ticker) Start(deadline time.Time) {
	ticker.mu.Lock()
	if ticker.running {
		close(ticker.stopCh)
	}
	stopCh := make(chan struct{})
	ticker.stopCh = stopCh
	ticker.running = true
	ticker.mu.Unlock()

	go ticker.run(deadline, stopCh)
}

// Stop halts polling. No further events are delivered until the next Start.
func (ticker *Ticker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if !ticker.running {
		return
	}
	close(ticker.stopCh)
	ticker.running = false
}

func (ticker *Ticker) run(deadline time.Time, stopCh chan struct{}) {
	poll := time.NewTicker(ticker.interval)
	defer poll.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-poll.C:
			now := ticker.clock.Now()
			remaining := RemainingUntil(deadline, now)
			if remaining <= 0 {
				ticker.finish(stopCh)
				ticker.emitComplete(Event{
					Type:     EventComplete,
					Deadline: deadline,
					At:       now,
				}, stopCh)
				return
			}
			ticker.emitTick(Event{
				Type:      EventTick,
				Remaining: remaining,
				Deadline:  deadline,
				At:        now,
			})
		}
	}
}

// emitTick drops the event when the consumer is behind; only the latest
// remaining value matters.
func (ticker *Ticker) emitTick(event Event) {
	select {
	case ticker.events <- event:
	default:
	}
}

// emitComplete must not be lost to a slow consumer, so it blocks until
// delivered or the run is stopped.
func (ticker *Ticker) emitComplete(event Event, stopCh chan struct{}) {
	select {
	case ticker.events <- event:
	case <-stopCh:
	}
}

func (ticker *Ticker) finish(stopCh chan struct{}) {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if ticker.stopCh == stopCh && ticker.running {
		ticker.running = false
	}
}

// RemainingUntil returns the countdown value for deadline at the given
// instant, rounded up to whole seconds and clamped at zero.
func RemainingUntil(deadline, now time.Time) time.Duration {
	remaining := deadline.Sub(now)
	if remaining <= 0 {
		return 0
	}
	seconds := remaining / time.Second
	if remaining%time.Second != 0 {
		seconds++
	}
	return seconds * time.Second
}
