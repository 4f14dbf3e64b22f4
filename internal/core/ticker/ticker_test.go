package ticker

import (
	"testing"
	"time"

	"focusbell/internal/core/clock"
)

func TestRemainingUntil(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		now      time.Time
		want     time.Duration
	}{
		{"whole seconds", base.Add(90 * time.Second), base, 90 * time.Second},
		{"fraction rounds up", base.Add(1500 * time.Millisecond), base, 2 * time.Second},
		{"just under a second", base.Add(10 * time.Millisecond), base, time.Second},
		{"at deadline", base, base, 0},
		{"past deadline", base, base.Add(time.Minute), 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := RemainingUntil(test.deadline, test.now)
			if got != test.want {
				t.Errorf("RemainingUntil() = %v, want %v", got, test.want)
			}
		})
	}
}

func collectUntilComplete(t *testing.T, events <-chan Event) (ticks int, complete Event) {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case event := <-events:
			if event.Type == EventComplete {
				return ticks, event
			}
			ticks++
		case <-timeout:
			t.Fatal("timed out waiting for complete event")
		}
	}
}

func TestRunEmitsTicksThenComplete(t *testing.T) {
	ticker := New(clock.New(), 10*time.Millisecond)
	deadline := time.Now().Add(55 * time.Millisecond)
	ticker.Start(deadline)

	ticks, complete := collectUntilComplete(t, ticker.Events())
	if ticks == 0 {
		t.Error("no tick events before completion")
	}
	if !complete.Deadline.Equal(deadline) {
		t.Errorf("complete deadline = %v, want %v", complete.Deadline, deadline)
	}

	// The run is over; exactly one complete per run.
	select {
	case event := <-ticker.Events():
		t.Fatalf("unexpected event after completion: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestStartReplacesRun(t *testing.T) {
	ticker := New(clock.New(), 10*time.Millisecond)
	first := time.Now().Add(time.Hour)
	ticker.Start(first)

	second := time.Now().Add(40 * time.Millisecond)
	ticker.Start(second)

	_, complete := collectUntilComplete(t, ticker.Events())
	if !complete.Deadline.Equal(second) {
		t.Errorf("complete deadline = %v, want the replacing run's %v", complete.Deadline, second)
	}
}

func TestStopHaltsEvents(t *testing.T) {
	ticker := New(clock.New(), 10*time.Millisecond)
	ticker.Start(time.Now().Add(40 * time.Millisecond))
	ticker.Stop()
	ticker.Stop() // idempotent

	deadline := time.After(100 * time.Millisecond)
	for {
		select {
		case event := <-ticker.Events():
			// A tick may have been buffered before Stop; complete must not be.
			if event.Type == EventComplete {
				t.Fatalf("complete event after Stop: %+v", event)
			}
		case <-deadline:
			return
		}
	}
}

func TestTicksCarryRoundedRemaining(t *testing.T) {
	ticker := New(clock.New(), 10*time.Millisecond)
	deadline := time.Now().Add(5 * time.Second)
	ticker.Start(deadline)
	defer ticker.Stop()

	select {
	case event := <-ticker.Events():
		if event.Type != EventTick {
			t.Fatalf("event type = %q, want tick", event.Type)
		}
		if event.Remaining%time.Second != 0 {
			t.Errorf("remaining %v is not whole seconds", event.Remaining)
		}
		if event.Remaining <= 0 || event.Remaining > 5*time.Second {
			t.Errorf("remaining %v out of range", event.Remaining)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tick")
	}
}
