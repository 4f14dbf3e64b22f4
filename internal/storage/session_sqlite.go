package storage

import (
	"database/sql"
	"fmt"
	"time"

	"focusbell/internal/core/model"

	_ "modernc.org/sqlite"
)

// sessionKey is the fixed key of the single persisted session row.
const sessionKey = "current"

// SessionStore persists exactly one session record in SQLite. It is a passive
// durable mirror: the engine owns the state, the store only overwrites and
// reads back one row.
type SessionStore struct {
	db *sql.DB
}

// OpenSessionStore opens (or creates) the session database at the given path.
func OpenSessionStore(dbPath string) (*SessionStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			key            TEXT PRIMARY KEY,
			mode           TEXT NOT NULL,
			running        INTEGER NOT NULL DEFAULT 0,
			deadline_ms    INTEGER NOT NULL DEFAULT 0,
			remaining_secs INTEGER NOT NULL DEFAULT 0,
			saved_at_ms    INTEGER NOT NULL DEFAULT 0
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create session table: %w", err)
	}

	return &SessionStore{db: db}, nil
}

// Close closes the database connection.
func (store *SessionStore) Close() error {
	return store.db.Close()
}

// Save overwrites the session record. The returned error is informational
// only; callers treat durability as best-effort.
func (store *SessionStore) Save(record model.StoredSession) error {
	var deadlineMillis int64
	if !record.Deadline.IsZero() {
		deadlineMillis = record.Deadline.UnixMilli()
	}

	running := 0
	if record.Running {
		running = 1
	}

	_, err := store.db.Exec(`
		INSERT INTO session (key, mode, running, deadline_ms, remaining_secs, saved_at_ms)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			mode = excluded.mode,
			running = excluded.running,
			deadline_ms = excluded.deadline_ms,
			remaining_secs = excluded.remaining_secs,
			saved_at_ms = excluded.saved_at_ms`,
		sessionKey, string(record.Mode), running, deadlineMillis,
		int64(record.Remaining/time.Second), record.SavedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load returns the last saved record. A missing or malformed row is reported
// as absent, never as an error.
func (store *SessionStore) Load() (model.StoredSession, bool) {
	row := store.db.QueryRow(`
		SELECT mode, running, deadline_ms, remaining_secs, saved_at_ms
		FROM session WHERE key = ?`, sessionKey)

	var (
		mode           string
		running        int
		deadlineMillis int64
		remainingSecs  int64
		savedAtMillis  int64
	)
	if err := row.Scan(&mode, &running, &deadlineMillis, &remainingSecs, &savedAtMillis); err != nil {
		return model.StoredSession{}, false
	}

	if !model.Mode(mode).Valid() || remainingSecs < 0 {
		return model.StoredSession{}, false
	}

	record := model.StoredSession{
		Mode:      model.Mode(mode),
		Running:   running != 0,
		Remaining: time.Duration(remainingSecs) * time.Second,
		SavedAt:   time.UnixMilli(savedAtMillis),
	}
	if deadlineMillis > 0 {
		record.Deadline = time.UnixMilli(deadlineMillis)
	}
	return record, true
}
