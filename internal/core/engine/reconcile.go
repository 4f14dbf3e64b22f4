package engine

import (
	"time"

	"focusbell/internal/core/model"
	"focusbell/internal/core/ticker"
)

// Reconcile computes the authoritative session state from a persisted record
// and the current wall-clock time. It is a pure function: no storage or timer
// dependency, so load-time recovery is testable in isolation.
//
// A record that was running is recomputed from its deadline; if the deadline
// passed while the app was away the state comes back finished (remaining
// zero) rather than negative. A missing or invalid record yields the default
// idle Focus state.
func Reconcile(record model.StoredSession, ok bool, now time.Time, config model.TimerConfig) model.SessionState {
	if !ok || !record.Mode.Valid() {
		return model.SessionState{
			Mode:      model.ModeFocus,
			Remaining: config.Duration(model.ModeFocus),
		}
	}

	duration := config.Duration(record.Mode)

	if record.Running && !record.Deadline.IsZero() {
		remaining := ticker.RemainingUntil(record.Deadline, now)
		if remaining <= 0 {
			// Completed while away.
			return model.SessionState{Mode: record.Mode}
		}
		if remaining > duration {
			remaining = duration
		}
		return model.SessionState{
			Mode:      record.Mode,
			Running:   true,
			Remaining: remaining,
			Deadline:  record.Deadline,
		}
	}

	remaining := record.Remaining
	if remaining < 0 {
		remaining = 0
	}
	if remaining > duration {
		remaining = duration
	}
	return model.SessionState{
		Mode:      record.Mode,
		Remaining: remaining,
	}
}
