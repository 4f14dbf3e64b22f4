package model

import "time"

// Mode identifies one of the fixed countdown categories.
type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
	ModeDemo       Mode = "demo"
)

// Modes returns all modes in display order.
func Modes() []Mode {
	return []Mode{ModeFocus, ModeShortBreak, ModeLongBreak, ModeDemo}
}

// Valid reports whether the mode is one of the known categories.
func (mode Mode) Valid() bool {
	switch mode {
	case ModeFocus, ModeShortBreak, ModeLongBreak, ModeDemo:
		return true
	}
	return false
}

// ModeConfig defines the countdown length and display label of a single mode.
type ModeConfig struct {
	Duration time.Duration
	Label    string
}

// TimerConfig maps every mode to its configuration. Configs come from user
// settings and may be replaced at runtime.
type TimerConfig struct {
	Modes map[Mode]ModeConfig
}

// Duration returns the configured countdown length for the mode.
func (config TimerConfig) Duration(mode Mode) time.Duration {
	return config.Modes[mode].Duration
}

// Label returns the display label for the mode.
func (config TimerConfig) Label(mode Mode) string {
	return config.Modes[mode].Label
}

// DefaultTimerConfig returns the standard pomodoro durations.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Modes: map[Mode]ModeConfig{
			ModeFocus:      {Duration: 25 * time.Minute, Label: "Focus"},
			ModeShortBreak: {Duration: 5 * time.Minute, Label: "Short Break"},
			ModeLongBreak:  {Duration: 15 * time.Minute, Label: "Long Break"},
			ModeDemo:       {Duration: 10 * time.Second, Label: "Demo"},
		},
	}
}
