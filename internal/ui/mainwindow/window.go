package mainwindow

import (
	"fmt"
	"image/color"
	"time"

	"focusbell/internal/core/engine"
	"focusbell/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines main window action handlers.
type Callbacks struct {
	OnToggle     func()
	OnReset      func()
	OnSwitchMode func(model.Mode)
	OnSettings   func()
	OnClose      func()
}

// Window is the main timer window: mode tabs, the countdown readout inside
// the progress ring, and the transport controls.
type Window struct {
	window       fyne.Window
	callbacks    Callbacks
	timeLabel    *canvas.Text
	stateLabel   *canvas.Text
	ring         *Ring
	flash        *canvas.Rectangle
	pulse        *Pulse
	toggleButton *widget.Button
	resetButton  *widget.Button
	modeButtons  map[model.Mode]*widget.Button
	modeRow      *fyne.Container
	currentMode  model.Mode
	closeToTray  bool
}

// New creates the main window.
func New(app fyne.App, config model.TimerConfig, showDemo bool, callbacks Callbacks) *Window {
	window := app.NewWindow("FocusBell")

	timeLabel := canvas.NewText("--:--", color.NRGBA{R: 245, G: 245, B: 245, A: 255})
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timeLabel.TextSize = 48

	stateLabel := canvas.NewText("", color.NRGBA{R: 180, G: 180, B: 180, A: 255})
	stateLabel.Alignment = fyne.TextAlignCenter
	stateLabel.TextSize = 14

	ring := NewRing()
	flash := canvas.NewRectangle(color.NRGBA{})

	main := &Window{
		window:      window,
		callbacks:   callbacks,
		timeLabel:   timeLabel,
		stateLabel:  stateLabel,
		ring:        ring,
		flash:       flash,
		modeButtons: map[model.Mode]*widget.Button{},
		currentMode: model.ModeFocus,
		closeToTray: true,
	}
	main.pulse = newPulse(func(value color.Color) {
		flash.FillColor = value
		canvas.Refresh(flash)
	})

	main.toggleButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		if main.callbacks.OnToggle != nil {
			main.callbacks.OnToggle()
		}
	})
	main.toggleButton.Importance = widget.HighImportance

	main.resetButton = widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), func() {
		if main.callbacks.OnReset != nil {
			main.callbacks.OnReset()
		}
	})

	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if main.callbacks.OnSettings != nil {
			main.callbacks.OnSettings()
		}
	})

	main.modeRow = container.NewHBox()
	main.rebuildModeRow(config, showDemo)

	readout := container.NewCenter(container.NewVBox(timeLabel, stateLabel))
	dial := container.NewStack(ring, readout)
	controls := container.NewHBox(main.toggleButton, main.resetButton, settingsButton)

	content := container.NewBorder(
		container.NewCenter(main.modeRow),
		container.NewCenter(controls),
		nil, nil,
		dial,
	)
	window.SetContent(container.NewStack(flash, content))
	window.Resize(fyne.NewSize(360, 420))
	window.SetCloseIntercept(func() {
		if main.closeToTray {
			window.Hide()
			return
		}
		if main.callbacks.OnClose != nil {
			main.callbacks.OnClose()
		}
	})

	return main
}

// SetOnSettings sets the settings handler. The settings window is built
// after the main window, so this is wired late.
func (main *Window) SetOnSettings(handler func()) {
	main.callbacks.OnSettings = handler
}

// ShowAndFocus displays the window.
func (main *Window) ShowAndFocus() {
	main.window.Show()
	main.window.RequestFocus()
}

// SetCloseToTray controls whether closing the window hides it instead of
// quitting.
func (main *Window) SetCloseToTray(enabled bool) {
	main.closeToTray = enabled
}

// Apply renders an engine event.
func (main *Window) Apply(event engine.Event) {
	main.setRemaining(event.Remaining)
	main.ring.SetProgress(event.Progress)
	main.setMode(event.Mode)
	main.setState(event.State, event.Label)
}

// Flash plays the visual cue for a feedback kind.
func (main *Window) Flash(kind engine.FeedbackKind) {
	spec, ok := pulseSpecs[kind]
	if !ok {
		return
	}
	main.pulse.Flash(spec)
}

// RebuildModes re-creates the mode tab row, typically after the Demo mode
// was unlocked or relabelled in settings.
func (main *Window) RebuildModes(config model.TimerConfig, showDemo bool) {
	main.rebuildModeRow(config, showDemo)
	main.highlightMode(main.currentMode)
	main.modeRow.Refresh()
}

var pulseSpecs = map[engine.FeedbackKind]pulseSpec{
	engine.FeedbackSoft:    {color: color.NRGBA{R: 255, G: 255, B: 255, A: 24}, flashes: 1, hold: 90 * time.Millisecond, gap: 60 * time.Millisecond},
	engine.FeedbackMedium:  {color: color.NRGBA{R: 255, G: 255, B: 255, A: 48}, flashes: 1, hold: 140 * time.Millisecond, gap: 60 * time.Millisecond},
	engine.FeedbackHeavy:   {color: color.NRGBA{R: 255, G: 255, B: 255, A: 72}, flashes: 2, hold: 140 * time.Millisecond, gap: 90 * time.Millisecond},
	engine.FeedbackSuccess: {color: color.NRGBA{R: 80, G: 200, B: 120, A: 64}, flashes: 2, hold: 120 * time.Millisecond, gap: 90 * time.Millisecond},
	engine.FeedbackAlarm:   {color: color.NRGBA{R: 214, G: 69, B: 65, A: 80}, flashes: 3, hold: 160 * time.Millisecond, gap: 110 * time.Millisecond},
}

func (main *Window) rebuildModeRow(config model.TimerConfig, showDemo bool) {
	main.modeRow.RemoveAll()
	main.modeButtons = map[model.Mode]*widget.Button{}
	for _, mode := range model.Modes() {
		if mode == model.ModeDemo && !showDemo {
			continue
		}
		mode := mode
		button := widget.NewButton(config.Label(mode), func() {
			if main.callbacks.OnSwitchMode != nil {
				main.callbacks.OnSwitchMode(mode)
			}
		})
		button.Importance = widget.LowImportance
		main.modeButtons[mode] = button
		main.modeRow.Add(button)
	}
}

func (main *Window) setRemaining(remaining time.Duration) {
	main.timeLabel.Text = formatRemaining(remaining)
	main.timeLabel.Refresh()
}

func (main *Window) setMode(mode model.Mode) {
	if mode == main.currentMode {
		return
	}
	main.currentMode = mode
	main.highlightMode(mode)
}

func (main *Window) highlightMode(mode model.Mode) {
	for buttonMode, button := range main.modeButtons {
		if buttonMode == mode {
			button.Importance = widget.MediumImportance
		} else {
			button.Importance = widget.LowImportance
		}
		button.Refresh()
	}
}

func (main *Window) setState(state engine.State, label string) {
	switch state {
	case engine.StateRunning:
		main.toggleButton.SetText("Pause")
		main.toggleButton.SetIcon(theme.MediaPauseIcon())
		main.stateLabel.Text = label
	case engine.StatePaused:
		main.toggleButton.SetText("Resume")
		main.toggleButton.SetIcon(theme.MediaPlayIcon())
		main.stateLabel.Text = label + " (paused)"
	case engine.StateFinished:
		main.toggleButton.SetText("Start")
		main.toggleButton.SetIcon(theme.MediaPlayIcon())
		main.stateLabel.Text = label + " finished"
	default:
		main.toggleButton.SetText("Start")
		main.toggleButton.SetIcon(theme.MediaPlayIcon())
		main.stateLabel.Text = label
	}
	main.stateLabel.Refresh()
}

func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
