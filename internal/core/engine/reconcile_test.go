package engine_test

import (
	"testing"
	"time"

	"focusbell/internal/core/engine"
	"focusbell/internal/core/model"
)

func TestReconcile(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	config := testConfig()

	tests := []struct {
		name   string
		record model.StoredSession
		ok     bool
		want   model.SessionState
	}{
		{
			name: "no record yields default focus",
			want: model.SessionState{Mode: model.ModeFocus, Remaining: 1500 * time.Second},
		},
		{
			name:   "invalid mode yields default focus",
			record: model.StoredSession{Mode: "nap", Running: true, Deadline: now.Add(time.Minute)},
			ok:     true,
			want:   model.SessionState{Mode: model.ModeFocus, Remaining: 1500 * time.Second},
		},
		{
			name:   "running session resumes from deadline",
			record: model.StoredSession{Mode: model.ModeFocus, Running: true, Deadline: now.Add(600 * time.Second)},
			ok:     true,
			want: model.SessionState{
				Mode:      model.ModeFocus,
				Running:   true,
				Remaining: 600 * time.Second,
				Deadline:  now.Add(600 * time.Second),
			},
		},
		{
			name:   "running remaining rounds up to whole seconds",
			record: model.StoredSession{Mode: model.ModeShortBreak, Running: true, Deadline: now.Add(2500 * time.Millisecond)},
			ok:     true,
			want: model.SessionState{
				Mode:      model.ModeShortBreak,
				Running:   true,
				Remaining: 3 * time.Second,
				Deadline:  now.Add(2500 * time.Millisecond),
			},
		},
		{
			name:   "completed while away",
			record: model.StoredSession{Mode: model.ModeFocus, Running: true, Deadline: now.Add(-time.Minute)},
			ok:     true,
			want:   model.SessionState{Mode: model.ModeFocus},
		},
		{
			name:   "running deadline clamped to duration",
			record: model.StoredSession{Mode: model.ModeShortBreak, Running: true, Deadline: now.Add(time.Hour)},
			ok:     true,
			want: model.SessionState{
				Mode:      model.ModeShortBreak,
				Running:   true,
				Remaining: 300 * time.Second,
				Deadline:  now.Add(time.Hour),
			},
		},
		{
			name:   "running without deadline falls back to stored remaining",
			record: model.StoredSession{Mode: model.ModeFocus, Running: true, Remaining: 200 * time.Second},
			ok:     true,
			want:   model.SessionState{Mode: model.ModeFocus, Remaining: 200 * time.Second},
		},
		{
			name:   "paused session preserved",
			record: model.StoredSession{Mode: model.ModeLongBreak, Remaining: 444 * time.Second},
			ok:     true,
			want:   model.SessionState{Mode: model.ModeLongBreak, Remaining: 444 * time.Second},
		},
		{
			name:   "paused remaining clamped to duration",
			record: model.StoredSession{Mode: model.ModeDemo, Remaining: time.Hour},
			ok:     true,
			want:   model.SessionState{Mode: model.ModeDemo, Remaining: 10 * time.Second},
		},
		{
			name:   "negative remaining clamped to zero",
			record: model.StoredSession{Mode: model.ModeFocus, Remaining: -time.Minute},
			ok:     true,
			want:   model.SessionState{Mode: model.ModeFocus},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := engine.Reconcile(test.record, test.ok, now, config)
			if got != test.want {
				t.Errorf("Reconcile() = %+v, want %+v", got, test.want)
			}
		})
	}
}
