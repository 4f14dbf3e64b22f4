package model

import "time"

// SessionState is the engine's live state. While running, Remaining is always
// recomputed from Deadline, never counted down.
type SessionState struct {
	Mode      Mode
	Running   bool
	Remaining time.Duration
	Deadline  time.Time
}

// StoredSession is the durable mirror of a session, written on every
// state-changing operation and reconciled against the wall clock on load.
type StoredSession struct {
	Mode      Mode
	Running   bool
	Deadline  time.Time
	Remaining time.Duration
	SavedAt   time.Time
}
