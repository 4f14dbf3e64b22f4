package platform

import (
	"log"
	"sync"
)

// KeepAwake discourages the OS from suspending the machine while a countdown
// runs. It is strictly an optimization: the engine recomputes remaining time
// from the absolute deadline, so correctness never depends on the inhibitor.
type KeepAwake struct {
	mu       sync.Mutex
	acquired bool
	release  func()
}

// NewKeepAwake returns an idle inhibitor for the current platform.
func NewKeepAwake() *KeepAwake {
	return &KeepAwake{}
}

// Acquire begins inhibiting system sleep. Redundant calls are no-ops.
func (keep *KeepAwake) Acquire() {
	keep.mu.Lock()
	defer keep.mu.Unlock()
	if keep.acquired {
		return
	}
	release, err := inhibitSleep()
	if err != nil {
		log.Printf("keep awake: %v", err)
		return
	}
	keep.acquired = true
	keep.release = release
}

// Release ends the inhibition. Redundant calls are no-ops.
func (keep *KeepAwake) Release() {
	keep.mu.Lock()
	defer keep.mu.Unlock()
	if !keep.acquired {
		return
	}
	if keep.release != nil {
		keep.release()
		keep.release = nil
	}
	keep.acquired = false
}
