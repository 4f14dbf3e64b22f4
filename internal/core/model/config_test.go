package model

import (
	"testing"
	"time"
)

func TestModeValid(t *testing.T) {
	for _, mode := range Modes() {
		if !mode.Valid() {
			t.Errorf("Valid() = false for %q", mode)
		}
	}
	for _, mode := range []Mode{"", "nap", "Focus"} {
		if mode.Valid() {
			t.Errorf("Valid() = true for %q", mode)
		}
	}
}

func TestTimerConfigLookups(t *testing.T) {
	config := DefaultTimerConfig()

	if got := config.Duration(ModeFocus); got != 25*time.Minute {
		t.Errorf("Duration(focus) = %v, want 25m", got)
	}
	if got := config.Label(ModeShortBreak); got != "Short Break" {
		t.Errorf("Label(short_break) = %q, want %q", got, "Short Break")
	}

	// Unknown modes read as zero values rather than panicking.
	if got := config.Duration("nap"); got != 0 {
		t.Errorf("Duration(unknown) = %v, want 0", got)
	}
	if got := config.Label("nap"); got != "" {
		t.Errorf("Label(unknown) = %q, want empty", got)
	}
}
