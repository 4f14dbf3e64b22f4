package settings

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// demoPIN gates the cosmetic Demo mode. Local-only; this is not a security
// boundary.
const demoPIN = "4207"

// Window handles the settings UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	focusMin    *widget.Entry
	shortMin    *widget.Entry
	longMin     *widget.Entry
	demoSec     *widget.Entry
	closeToTray *widget.Check
	pinEntry    *widget.Entry
	pinStatus   *widget.Label
	demoRow     *fyne.Container
}

// New creates a settings window.
func New(app fyne.App, current Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("FocusBell Settings")

	focusMin := widget.NewEntry()
	shortMin := widget.NewEntry()
	longMin := widget.NewEntry()
	demoSec := widget.NewEntry()

	closeToTray := widget.NewCheck("Close to tray", nil)

	pinEntry := widget.NewPasswordEntry()
	pinEntry.SetPlaceHolder("4-digit PIN")
	pinStatus := widget.NewLabel("")

	prefs := &Window{
		window:      window,
		settings:    current,
		onSave:      onSave,
		focusMin:    focusMin,
		shortMin:    shortMin,
		longMin:     longMin,
		demoSec:     demoSec,
		closeToTray: closeToTray,
		pinEntry:    pinEntry,
		pinStatus:   pinStatus,
	}

	unlockButton := widget.NewButton("Unlock", prefs.handleUnlock)

	prefs.demoRow = container.NewHBox(widget.NewLabel("Demo duration"), demoSec, widget.NewLabel("sec"))

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus"), focusMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), shortMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), longMin, widget.NewLabel("min")),
		prefs.demoRow,
		widget.NewSeparator(),
		closeToTray,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Demo mode", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(pinEntry, unlockButton, pinStatus),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 420))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs.applyValues(current)
	return prefs
}

// Show displays the settings window with current values.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(current Settings) {
	prefs.settings = current
	prefs.applyValues(current)
}

func (prefs *Window) applyValues(current Settings) {
	prefs.focusMin.SetText(fmt.Sprintf("%d", int(current.FocusDuration.Minutes())))
	prefs.shortMin.SetText(fmt.Sprintf("%d", int(current.ShortBreakDuration.Minutes())))
	prefs.longMin.SetText(fmt.Sprintf("%d", int(current.LongBreakDuration.Minutes())))
	prefs.demoSec.SetText(fmt.Sprintf("%d", int(current.DemoDuration.Seconds())))
	prefs.closeToTray.SetChecked(current.CloseToTray)
	prefs.refreshDemoGate()
}

func (prefs *Window) refreshDemoGate() {
	if prefs.settings.DemoUnlocked {
		prefs.pinStatus.SetText("unlocked")
		prefs.demoRow.Show()
	} else {
		prefs.pinStatus.SetText("")
		prefs.demoRow.Hide()
	}
}

func (prefs *Window) handleUnlock() {
	if prefs.pinEntry.Text != demoPIN {
		prefs.pinStatus.SetText("wrong PIN")
		return
	}
	prefs.settings.DemoUnlocked = true
	prefs.pinEntry.SetText("")
	prefs.refreshDemoGate()
}

func (prefs *Window) handleSave() {
	current := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.focusMin.Text); ok {
		current.FocusDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.shortMin.Text); ok {
		current.ShortBreakDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.longMin.Text); ok {
		current.LongBreakDuration = time.Duration(minutes) * time.Minute
	}
	if seconds, ok := parsePositiveInt(prefs.demoSec.Text); ok {
		current.DemoDuration = time.Duration(seconds) * time.Second
	}
	current.CloseToTray = prefs.closeToTray.Checked

	prefs.settings = current
	if prefs.onSave != nil {
		prefs.onSave(current)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
