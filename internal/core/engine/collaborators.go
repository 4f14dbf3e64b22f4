package engine

import (
	"time"

	"focusbell/internal/core/model"
	"focusbell/internal/core/ticker"
)

// Store persists the single session record. Save failures are logged and
// swallowed by the engine; the in-memory state stays authoritative.
type Store interface {
	Save(record model.StoredSession) error
	// Load returns the last saved record, or false when none exists or the
	// stored value is malformed.
	Load() (model.StoredSession, bool)
}

// Feedback receives fire-and-forget cue requests.
type Feedback interface {
	Emit(kind FeedbackKind)
}

// Audio plays the completion cue. Both calls are best-effort.
type Audio interface {
	Prepare()
	PlayCompletion()
}

// Notifier delivers background alerts. Notify silently no-ops when permission
// was never granted.
type Notifier interface {
	RequestPermission() bool
	Notify(title, body string)
}

// BackgroundTicker is the isolated poll loop driving the engine while a
// countdown runs.
type BackgroundTicker interface {
	Start(deadline time.Time)
	Stop()
	Events() <-chan ticker.Event
}
