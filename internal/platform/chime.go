package platform

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Chime owns the completion-sound resource with an explicit lifecycle:
// Prepare materializes the embedded WAV on disk, PlayCompletion hands it to
// the system player, Release cleans up. Every step is best-effort; a missing
// audio stack never affects the countdown.
type Chime struct {
	mu   sync.Mutex
	data []byte
	path string
}

// NewChime creates a chime around embedded WAV bytes.
func NewChime(data []byte) *Chime {
	return &Chime{data: data}
}

// Prepare writes the WAV to a temp file so the first completion does not pay
// the extraction cost. Safe to call repeatedly.
func (chime *Chime) Prepare() {
	if _, err := chime.ensureFile(); err != nil {
		log.Printf("prepare audio: %v", err)
	}
}

// PlayCompletion plays the chime, blocking until playback ends.
func (chime *Chime) PlayCompletion() {
	path, err := chime.ensureFile()
	if err != nil {
		log.Printf("play completion: %v", err)
		return
	}
	if err := PlayWaveFile(path); err != nil {
		log.Printf("play completion: %v", err)
	}
}

// Release removes the extracted file.
func (chime *Chime) Release() {
	chime.mu.Lock()
	defer chime.mu.Unlock()
	if chime.path == "" {
		return
	}
	if err := os.Remove(chime.path); err != nil && !os.IsNotExist(err) {
		log.Printf("release audio: %v", err)
	}
	chime.path = ""
}

func (chime *Chime) ensureFile() (string, error) {
	chime.mu.Lock()
	defer chime.mu.Unlock()
	if chime.path != "" {
		return chime.path, nil
	}
	if len(chime.data) == 0 {
		return "", fmt.Errorf("no chime data")
	}

	path := filepath.Join(os.TempDir(), "focusbell-chime.wav")
	if err := os.WriteFile(path, chime.data, 0o644); err != nil {
		return "", fmt.Errorf("write chime file: %w", err)
	}
	chime.path = path
	return path, nil
}
