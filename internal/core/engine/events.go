package engine

import (
	"time"

	"focusbell/internal/core/model"
)

// State represents the current engine phase.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateFinished State = "finished"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
)

// Event represents an engine update for observers.
type Event struct {
	Type      EventType
	State     State
	Mode      model.Mode
	Label     string
	Remaining time.Duration
	Progress  float64
	At        time.Time
}

// FeedbackKind classifies the tactile/visual cue requested from the
// presentation layer.
type FeedbackKind string

const (
	FeedbackSoft    FeedbackKind = "soft"
	FeedbackMedium  FeedbackKind = "medium"
	FeedbackHeavy   FeedbackKind = "heavy"
	FeedbackSuccess FeedbackKind = "success"
	FeedbackAlarm   FeedbackKind = "alarm"
)
