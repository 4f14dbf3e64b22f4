package mainwindow

import (
	"context"
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// pulseSpec defines a flash sequence for one feedback kind.
type pulseSpec struct {
	color   color.NRGBA
	flashes int
	hold    time.Duration
	gap     time.Duration
}

// Pulse drives short background flashes as visual feedback. Starting a pulse
// cancels any pulse still in flight.
type Pulse struct {
	mu       sync.Mutex
	cancel   context.CancelFunc
	setColor func(color.Color)
}

func newPulse(setColor func(color.Color)) *Pulse {
	return &Pulse{setColor: setColor}
}

// Flash runs the given spec on its own goroutine.
func (pulse *Pulse) Flash(spec pulseSpec) {
	pulse.mu.Lock()
	if pulse.cancel != nil {
		pulse.cancel()
	}
	runCtx, cancel := context.WithCancel(context.Background())
	pulse.cancel = cancel
	pulse.mu.Unlock()

	go pulse.run(runCtx, spec)
}

// Stop cancels any active pulse and clears the flash layer.
func (pulse *Pulse) Stop() {
	pulse.mu.Lock()
	if pulse.cancel != nil {
		pulse.cancel()
		pulse.cancel = nil
	}
	pulse.mu.Unlock()
	pulse.apply(color.NRGBA{})
}

func (pulse *Pulse) run(ctx context.Context, spec pulseSpec) {
	for i := 0; i < spec.flashes; i++ {
		pulse.apply(spec.color)
		if !sleepWithContext(ctx, spec.hold) {
			break
		}
		pulse.apply(color.NRGBA{})
		if !sleepWithContext(ctx, spec.gap) {
			break
		}
	}
	pulse.apply(color.NRGBA{})
}

func (pulse *Pulse) apply(value color.Color) {
	fyne.Do(func() {
		pulse.setColor(value)
	})
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
