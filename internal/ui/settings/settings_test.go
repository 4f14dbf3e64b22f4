package settings

import (
	"testing"
	"time"

	"focusbell/internal/core/model"
)

func TestTimerConfigConversion(t *testing.T) {
	current := Settings{
		FocusDuration:      30 * time.Minute,
		ShortBreakDuration: 7 * time.Minute,
		LongBreakDuration:  20 * time.Minute,
		DemoDuration:       12 * time.Second,
	}

	config := current.TimerConfig()

	tests := []struct {
		mode      model.Mode
		duration  time.Duration
		wantLabel string
	}{
		{model.ModeFocus, 30 * time.Minute, "Focus"},
		{model.ModeShortBreak, 7 * time.Minute, "Short Break"},
		{model.ModeLongBreak, 20 * time.Minute, "Long Break"},
		{model.ModeDemo, 12 * time.Second, "Demo"},
	}
	for _, test := range tests {
		if got := config.Duration(test.mode); got != test.duration {
			t.Errorf("Duration(%s) = %v, want %v", test.mode, got, test.duration)
		}
		if got := config.Label(test.mode); got != test.wantLabel {
			t.Errorf("Label(%s) = %q, want %q", test.mode, got, test.wantLabel)
		}
	}
}

func TestDefaultSettingsMatchDefaultConfig(t *testing.T) {
	if got := DefaultSettings().TimerConfig(); got.Duration(model.ModeFocus) != model.DefaultTimerConfig().Duration(model.ModeFocus) {
		t.Errorf("default focus duration = %v, want %v",
			got.Duration(model.ModeFocus), model.DefaultTimerConfig().Duration(model.ModeFocus))
	}
}
