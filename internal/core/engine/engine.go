// Package engine owns the timer session state machine: mode, running flag and
// remaining time, the completion transition and the post-completion grace
// window. All remaining-time values are recomputed from the absolute deadline
// rather than counted down, so the countdown survives delayed polls and
// application restarts.
package engine

import (
	"log"
	"sync"
	"time"

	"focusbell/internal/core/clock"
	"focusbell/internal/core/model"
	"focusbell/internal/core/ticker"
)

// DefaultGraceWindow is how long the finished state is shown before the
// engine returns to idle on its own.
const DefaultGraceWindow = 3 * time.Second

// Options contains the engine's collaborators and tunables. Zero fields fall
// back to real implementations or no-ops.
type Options struct {
	Clock       clock.Clock
	Ticker      BackgroundTicker
	Store       Store
	Feedback    Feedback
	Audio       Audio
	Notifier    Notifier
	Visible     func() bool
	GraceWindow time.Duration
}

// Engine is the single owner of the session state. Operations are
// synchronous and non-blocking; ticker events are consumed serially on the
// engine's own goroutine.
type Engine struct {
	mu         sync.Mutex
	config     model.TimerConfig
	options    Options
	mode       model.Mode
	running    bool
	remaining  time.Duration
	deadline   time.Time
	graceGen   uint64
	graceTimer clock.Timer
	events     []chan Event
	stopCh     chan struct{}
	started    bool
}

// New creates an Engine in the idle state for the Focus mode.
func New(config model.TimerConfig, options Options) *Engine {
	if options.Clock == nil {
		options.Clock = clock.New()
	}
	if options.Ticker == nil {
		options.Ticker = ticker.New(options.Clock, time.Second)
	}
	if options.GraceWindow <= 0 {
		options.GraceWindow = DefaultGraceWindow
	}
	if options.Visible == nil {
		options.Visible = func() bool { return true }
	}

	return &Engine{
		config:    config,
		options:   options,
		mode:      model.ModeFocus,
		remaining: config.Duration(model.ModeFocus),
		stopCh:    make(chan struct{}),
	}
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Start launches the goroutine that consumes ticker events.
func (engine *Engine) Start() {
	engine.mu.Lock()
	if engine.started {
		engine.mu.Unlock()
		return
	}
	engine.started = true
	engine.mu.Unlock()

	go engine.consume()
}

// Close stops the ticker, cancels any pending auto-reset and closes observer
// channels.
func (engine *Engine) Close() {
	engine.mu.Lock()
	engine.cancelGraceLocked()
	events := engine.events
	engine.events = nil
	started := engine.started
	engine.started = false
	engine.mu.Unlock()

	engine.options.Ticker.Stop()
	if started {
		close(engine.stopCh)
	}
	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns the current session state.
func (engine *Engine) Snapshot() model.SessionState {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return model.SessionState{
		Mode:      engine.mode,
		Running:   engine.running,
		Remaining: engine.remaining,
		Deadline:  engine.deadline,
	}
}

// SwitchMode stops any countdown and makes newMode current at its full
// duration. Unknown modes are ignored.
func (engine *Engine) SwitchMode(newMode model.Mode) {
	if !newMode.Valid() {
		return
	}

	engine.mu.Lock()
	engine.cancelGraceLocked()
	engine.running = false
	engine.deadline = time.Time{}
	engine.mode = newMode
	engine.remaining = engine.config.Duration(newMode)
	engine.persistLocked(engine.options.Clock.Now())
	event := engine.stateEventLocked()
	engine.mu.Unlock()

	engine.options.Ticker.Stop()
	engine.emitFeedback(FeedbackSoft)
	engine.emit(event)
}

// Toggle is the single play/pause affordance. A finished session restarts at
// full duration; an idle or paused session starts; a running one pauses.
func (engine *Engine) Toggle() {
	now := engine.options.Clock.Now()

	engine.mu.Lock()
	engine.cancelGraceLocked()

	var kind FeedbackKind
	starting := false
	restarting := false
	switch {
	case engine.remaining <= 0:
		// Finished state: implicit restart at full duration.
		engine.remaining = engine.config.Duration(engine.mode)
		engine.startLocked(now)
		kind = FeedbackMedium
		starting = true
		restarting = true
	case !engine.running:
		engine.startLocked(now)
		kind = FeedbackMedium
		starting = true
	default:
		engine.running = false
		engine.remaining = engine.clampLocked(ticker.RemainingUntil(engine.deadline, now))
		engine.deadline = time.Time{}
		engine.persistLocked(now)
		kind = FeedbackSoft
	}
	event := engine.stateEventLocked()
	deadline := engine.deadline
	engine.mu.Unlock()

	if starting {
		engine.options.Ticker.Start(deadline)
		if engine.options.Audio != nil {
			engine.options.Audio.Prepare()
		}
	} else {
		engine.options.Ticker.Stop()
	}
	if restarting && engine.options.Notifier != nil {
		// Permission prompts can block on some platforms.
		go engine.options.Notifier.RequestPermission()
	}
	engine.emitFeedback(kind)
	engine.emit(event)
}

// Reset returns the current mode to its full duration, stopped. Valid in any
// state and idempotent.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	engine.cancelGraceLocked()
	engine.running = false
	engine.deadline = time.Time{}
	engine.remaining = engine.config.Duration(engine.mode)
	engine.persistLocked(engine.options.Clock.Now())
	event := engine.stateEventLocked()
	engine.mu.Unlock()

	engine.options.Ticker.Stop()
	engine.emitFeedback(FeedbackMedium)
	engine.emit(event)
}

// UpdateConfig replaces the mode configuration. The displayed remaining time
// snaps to the new duration only when the current mode sits at a fresh or
// finished state; a paused mid-session value is preserved until the user
// resets, though it is still clamped to the new duration.
func (engine *Engine) UpdateConfig(config model.TimerConfig) {
	engine.mu.Lock()
	previous := engine.config
	engine.config = config

	if !engine.running {
		duration := config.Duration(engine.mode)
		if engine.remaining == previous.Duration(engine.mode) {
			engine.remaining = duration
		}
		if engine.remaining > duration {
			engine.remaining = duration
		}
	}
	engine.persistLocked(engine.options.Clock.Now())
	event := engine.stateEventLocked()
	engine.mu.Unlock()

	engine.emit(event)
}

// Restore applies a reconciled session state on startup. A running state
// resumes its ticker; a state that completed while the app was away enters
// Finished and schedules the auto-reset immediately.
func (engine *Engine) Restore(state model.SessionState) {
	now := engine.options.Clock.Now()

	engine.mu.Lock()
	if state.Mode.Valid() {
		engine.mode = state.Mode
	}
	engine.remaining = engine.clampLocked(state.Remaining)
	engine.running = false
	engine.deadline = time.Time{}

	finished := false
	if state.Running && engine.remaining > 0 {
		engine.running = true
		engine.deadline = state.Deadline
	} else if engine.remaining <= 0 {
		finished = true
		engine.scheduleGraceLocked()
	}
	engine.persistLocked(now)
	event := engine.stateEventLocked()
	deadline := engine.deadline
	running := engine.running
	engine.mu.Unlock()

	if running {
		engine.options.Ticker.Start(deadline)
	}
	if finished {
		engine.completionEffects()
	}
	engine.emit(event)
}

// consume processes ticker events serially until Close.
func (engine *Engine) consume() {
	for {
		select {
		case <-engine.stopCh:
			return
		case event := <-engine.options.Ticker.Events():
			switch event.Type {
			case ticker.EventTick:
				engine.handleTick(event)
			case ticker.EventComplete:
				engine.handleComplete(event)
			}
		}
	}
}

// handleTick updates the remaining time from a poll. Stale events from a
// replaced run and no-op values are discarded.
func (engine *Engine) handleTick(tick ticker.Event) {
	engine.mu.Lock()
	if !engine.running || !tick.Deadline.Equal(engine.deadline) {
		engine.mu.Unlock()
		return
	}
	remaining := engine.clampLocked(tick.Remaining)
	if remaining == engine.remaining {
		engine.mu.Unlock()
		return
	}
	engine.remaining = remaining
	event := engine.tickEventLocked(tick.At)
	engine.mu.Unlock()

	engine.emit(event)
}

// handleComplete drives the one-shot completion transition.
func (engine *Engine) handleComplete(tick ticker.Event) {
	engine.mu.Lock()
	if !engine.running || !tick.Deadline.Equal(engine.deadline) {
		engine.mu.Unlock()
		return
	}
	engine.running = false
	engine.remaining = 0
	engine.deadline = time.Time{}
	engine.persistLocked(engine.options.Clock.Now())
	engine.scheduleGraceLocked()
	event := engine.stateEventLocked()
	engine.mu.Unlock()

	engine.options.Ticker.Stop()
	engine.completionEffects()
	engine.emit(event)
}

// completionEffects fires the ancillary completion cues. None of them may
// affect the countdown state.
func (engine *Engine) completionEffects() {
	engine.emitFeedback(FeedbackAlarm)
	if engine.options.Audio != nil {
		engine.options.Audio.PlayCompletion()
	}
	if engine.options.Notifier != nil && !engine.options.Visible() {
		engine.mu.Lock()
		label := engine.config.Label(engine.mode)
		engine.mu.Unlock()
		engine.options.Notifier.Notify(label+" finished", "Time for the next session.")
	}
}

// scheduleGraceLocked arms the one-shot auto-reset. The generation token
// guarantees a cancelled reset can never fire late.
func (engine *Engine) scheduleGraceLocked() {
	engine.graceGen++
	generation := engine.graceGen
	engine.graceTimer = engine.options.Clock.AfterFunc(engine.options.GraceWindow, func() {
		engine.autoReset(generation)
	})
}

func (engine *Engine) cancelGraceLocked() {
	engine.graceGen++
	if engine.graceTimer != nil {
		engine.graceTimer.Stop()
		engine.graceTimer = nil
	}
}

// autoReset restores the full duration after the grace window, unless a state
// change invalidated this generation in the meantime.
func (engine *Engine) autoReset(generation uint64) {
	engine.mu.Lock()
	if generation != engine.graceGen || engine.running || engine.remaining != 0 {
		engine.mu.Unlock()
		return
	}
	engine.graceTimer = nil
	engine.remaining = engine.config.Duration(engine.mode)
	engine.persistLocked(engine.options.Clock.Now())
	event := engine.stateEventLocked()
	engine.mu.Unlock()

	engine.emit(event)
}

// startLocked arms a countdown from the current remaining value.
func (engine *Engine) startLocked(now time.Time) {
	engine.running = true
	engine.deadline = now.Add(engine.remaining)
	engine.persistLocked(now)
}

// persistLocked mirrors the state to the store. Durability is best-effort;
// failures leave the in-memory state authoritative.
func (engine *Engine) persistLocked(now time.Time) {
	if engine.options.Store == nil {
		return
	}
	record := model.StoredSession{
		Mode:      engine.mode,
		Running:   engine.running,
		Deadline:  engine.deadline,
		Remaining: engine.remaining,
		SavedAt:   now,
	}
	if err := engine.options.Store.Save(record); err != nil {
		log.Printf("save session: %v", err)
	}
}

func (engine *Engine) clampLocked(remaining time.Duration) time.Duration {
	if remaining < 0 {
		return 0
	}
	if duration := engine.config.Duration(engine.mode); remaining > duration {
		return duration
	}
	return remaining
}

func (engine *Engine) stateLocked() State {
	switch {
	case engine.running:
		return StateRunning
	case engine.remaining <= 0:
		return StateFinished
	case engine.remaining == engine.config.Duration(engine.mode):
		return StateIdle
	default:
		return StatePaused
	}
}

func (engine *Engine) progressLocked() float64 {
	duration := engine.config.Duration(engine.mode)
	if duration <= 0 {
		return 1
	}
	progress := float64(duration-engine.remaining) / float64(duration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (engine *Engine) stateEventLocked() Event {
	return Event{
		Type:      EventStateChange,
		State:     engine.stateLocked(),
		Mode:      engine.mode,
		Label:     engine.config.Label(engine.mode),
		Remaining: engine.remaining,
		Progress:  engine.progressLocked(),
		At:        engine.options.Clock.Now(),
	}
}

func (engine *Engine) tickEventLocked(at time.Time) Event {
	return Event{
		Type:      EventTick,
		State:     engine.stateLocked(),
		Mode:      engine.mode,
		Label:     engine.config.Label(engine.mode),
		Remaining: engine.remaining,
		Progress:  engine.progressLocked(),
		At:        at,
	}
}

func (engine *Engine) emitFeedback(kind FeedbackKind) {
	if engine.options.Feedback != nil {
		engine.options.Feedback.Emit(kind)
	}
}

// emit delivers the event to every subscriber without blocking. Sends stay
// under the lock so Close can never close a channel mid-send.
func (engine *Engine) emit(event Event) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
