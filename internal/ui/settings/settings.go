package settings

import (
	"time"

	"focusbell/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	FocusDuration      time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration
	// Demo mode counts in seconds; the other modes are edited in minutes.
	DemoDuration time.Duration

	// DemoUnlocked is the cosmetic flag behind the 4-digit PIN gate.
	DemoUnlocked bool
	CloseToTray  bool
}

// DefaultSettings returns default settings for FocusBell.
func DefaultSettings() Settings {
	return Settings{
		FocusDuration:      25 * time.Minute,
		ShortBreakDuration: 5 * time.Minute,
		LongBreakDuration:  15 * time.Minute,
		DemoDuration:       10 * time.Second,
		DemoUnlocked:       false,
		CloseToTray:        true,
	}
}

// TimerConfig converts settings to the engine's mode configuration.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		Modes: map[model.Mode]model.ModeConfig{
			model.ModeFocus:      {Duration: settings.FocusDuration, Label: "Focus"},
			model.ModeShortBreak: {Duration: settings.ShortBreakDuration, Label: "Short Break"},
			model.ModeLongBreak:  {Duration: settings.LongBreakDuration, Label: "Long Break"},
			model.ModeDemo:       {Duration: settings.DemoDuration, Label: "Demo"},
		},
	}
}
