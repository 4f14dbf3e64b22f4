package clock

import (
	"testing"
	"time"
)

func TestMockAdvanceFiresDueTimers(t *testing.T) {
	mock := NewMock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	var fired []string
	mock.AfterFunc(2*time.Second, func() { fired = append(fired, "second") })
	mock.AfterFunc(time.Second, func() { fired = append(fired, "first") })

	mock.Advance(500 * time.Millisecond)
	if len(fired) != 0 {
		t.Fatalf("timers fired early: %v", fired)
	}

	mock.Advance(2 * time.Second)
	if len(fired) != 2 || fired[0] != "first" || fired[1] != "second" {
		t.Errorf("fired = %v, want [first second] in due order", fired)
	}
}

func TestMockTimerStop(t *testing.T) {
	mock := NewMock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	fired := false
	timer := mock.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Error("Stop() = false for a pending timer")
	}
	if timer.Stop() {
		t.Error("Stop() = true on second call")
	}

	mock.Advance(time.Minute)
	if fired {
		t.Error("stopped timer fired")
	}
}

func TestMockStopAfterFire(t *testing.T) {
	mock := NewMock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	timer := mock.AfterFunc(time.Second, func() {})
	mock.Advance(time.Second)

	if timer.Stop() {
		t.Error("Stop() = true for an already fired timer")
	}
}

func TestMockCallbackMaySchedule(t *testing.T) {
	mock := NewMock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	chained := false
	mock.AfterFunc(time.Second, func() {
		mock.AfterFunc(time.Second, func() { chained = true })
	})

	mock.Advance(time.Second)
	if chained {
		t.Fatal("chained timer fired in the same advance")
	}
	mock.Advance(time.Second)
	if !chained {
		t.Error("chained timer never fired")
	}
}

func TestMockNowAdvances(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mock := NewMock(start)

	mock.Advance(90 * time.Second)
	if got := mock.Now(); !got.Equal(start.Add(90 * time.Second)) {
		t.Errorf("Now() = %v, want %v", got, start.Add(90*time.Second))
	}
}
