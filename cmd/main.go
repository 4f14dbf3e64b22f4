package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"focusbell/internal/core/clock"
	"focusbell/internal/core/engine"
	"focusbell/internal/core/model"
	"focusbell/internal/core/ticker"
	"focusbell/internal/platform"
	"focusbell/internal/storage"
	"focusbell/internal/ui/mainwindow"
	"focusbell/internal/ui/settings"
	"focusbell/internal/ui/tray"
	"focusbell/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "FocusBell"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.focusbell.app")
	activeIcon := resources.MustLogo("tray_active.png")
	pausedIcon := resources.MustLogo("tray_paused.png")
	fyneApp.SetIcon(activeIcon)

	userSettings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	config := userSettings.TimerConfig()

	sessionStore := openSessionStore()
	defer func() {
		if sessionStore != nil {
			_ = sessionStore.Close()
		}
	}()

	chime := platform.NewChime(resources.MustSound("complete.wav"))
	defer chime.Release()
	keepAwake := platform.NewKeepAwake()
	defer keepAwake.Release()

	var visible atomic.Bool
	visible.Store(true)
	fyneApp.Lifecycle().SetOnEnteredForeground(func() { visible.Store(true) })
	fyneApp.Lifecycle().SetOnExitedForeground(func() { visible.Store(false) })

	var timerEngine *engine.Engine
	window := mainwindow.New(fyneApp, config, userSettings.DemoUnlocked, mainwindow.Callbacks{
		OnToggle:     func() { timerEngine.Toggle() },
		OnReset:      func() { timerEngine.Reset() },
		OnSwitchMode: func(mode model.Mode) { timerEngine.SwitchMode(mode) },
		OnClose:      func() { fyneApp.Quit() },
	})
	window.SetCloseToTray(userSettings.CloseToTray)

	wallClock := clock.New()
	options := engine.Options{
		Clock:    wallClock,
		Ticker:   ticker.New(wallClock, time.Second),
		Feedback: windowFeedback{window: window},
		Audio:    chime,
		Notifier: fyneNotifier{app: fyneApp},
		Visible:  visible.Load,
	}
	if sessionStore != nil {
		options.Store = sessionStore
	}
	timerEngine = engine.New(config, options)
	defer timerEngine.Close()

	settingsWindow := settings.New(fyneApp, userSettings, func(updated settings.Settings) {
		userSettings = updated
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Printf("save settings: %v", err)
		}
		timerEngine.UpdateConfig(updated.TimerConfig())
		window.SetCloseToTray(updated.CloseToTray)
		window.RebuildModes(updated.TimerConfig(), updated.DemoUnlocked)
	})
	window.SetOnSettings(func() {
		settingsWindow.UpdateSettings(userSettings)
		settingsWindow.Show()
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:   func() { window.ShowAndFocus() },
			OnToggle: func() { timerEngine.Toggle() },
			OnReset:  func() { timerEngine.Reset() },
			OnSettings: func() {
				settingsWindow.UpdateSettings(userSettings)
				settingsWindow.Show()
			},
			OnQuit: func() { fyneApp.Quit() },
		})
		desktopApp.SetSystemTrayIcon(activeIcon)
	}

	events := timerEngine.Subscribe(8)
	go func() {
		running := false
		for event := range events {
			event := event
			if event.Type == engine.EventStateChange {
				isRunning := event.State == engine.StateRunning
				if isRunning != running {
					running = isRunning
					if running {
						keepAwake.Acquire()
					} else {
						keepAwake.Release()
					}
					if desktopApp, ok := fyneApp.(desktop.App); ok {
						if running {
							desktopApp.SetSystemTrayIcon(activeIcon)
						} else {
							desktopApp.SetSystemTrayIcon(pausedIcon)
						}
					}
				}
			}
			fyne.Do(func() {
				window.Apply(event)
				if trayManager != nil {
					trayManager.SetStatus(event.Label + " " + formatRemaining(event.Remaining))
					trayManager.SetRunning(event.State == engine.StateRunning)
				}
			})
		}
	}()

	timerEngine.Start()

	var record model.StoredSession
	recordFound := false
	if sessionStore != nil {
		record, recordFound = sessionStore.Load()
	}
	timerEngine.Restore(engine.Reconcile(record, recordFound, wallClock.Now(), config))

	window.ShowAndFocus()
	fyneApp.Run()
}

func openSessionStore() *storage.SessionStore {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("resolve user config dir: %v", err)
		return nil
	}
	dataDir := filepath.Join(configDir, appName)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Printf("create data dir: %v", err)
		return nil
	}
	store, err := storage.OpenSessionStore(filepath.Join(dataDir, "session.db"))
	if err != nil {
		// Best-effort durability: the timer still works for this run.
		log.Printf("open session store: %v", err)
		return nil
	}
	return store
}

func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// windowFeedback routes engine feedback cues to the main window's flash
// layer.
type windowFeedback struct {
	window *mainwindow.Window
}

func (feedback windowFeedback) Emit(kind engine.FeedbackKind) {
	feedback.window.Flash(kind)
}

// fyneNotifier delivers background alerts through the desktop notification
// service. Desktop notifications need no permission prompt.
type fyneNotifier struct {
	app fyne.App
}

func (notifier fyneNotifier) RequestPermission() bool {
	return true
}

func (notifier fyneNotifier) Notify(title, body string) {
	notifier.app.SendNotification(fyne.NewNotification(title, body))
}
