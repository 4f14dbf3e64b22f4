package mainwindow

import (
	"testing"
	"time"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		remaining time.Duration
		want      string
	}{
		{25 * time.Minute, "25:00"},
		{90 * time.Second, "01:30"},
		{9 * time.Second, "00:09"},
		{0, "00:00"},
		{-time.Second, "00:00"},
		{99 * time.Minute, "99:00"},
	}

	for _, test := range tests {
		if got := formatRemaining(test.remaining); got != test.want {
			t.Errorf("formatRemaining(%v) = %q, want %q", test.remaining, got, test.want)
		}
	}
}
