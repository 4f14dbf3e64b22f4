package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"focusbell/internal/ui/settings"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusMinutes      int  `yaml:"focus_minutes"`
	ShortBreakMinutes int  `yaml:"short_break_minutes"`
	LongBreakMinutes  int  `yaml:"long_break_minutes"`
	DemoSeconds       int  `yaml:"demo_seconds"`
	DemoUnlocked      bool `yaml:"demo_unlocked"`
	CloseToTray       bool `yaml:"close_to_tray"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (settings.Settings, error) {
	loaded := settings.DefaultSettings()
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return loaded, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return loaded, nil
		}
		return loaded, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return loaded, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&loaded, fileData)
	return loaded, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, current settings.Settings) error {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		FocusMinutes:      int(current.FocusDuration / time.Minute),
		ShortBreakMinutes: int(current.ShortBreakDuration / time.Minute),
		LongBreakMinutes:  int(current.LongBreakDuration / time.Minute),
		DemoSeconds:       int(current.DemoDuration / time.Second),
		DemoUnlocked:      current.DemoUnlocked,
		CloseToTray:       current.CloseToTray,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName, fileName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, fileName), nil
}

func applyYamlSettings(loaded *settings.Settings, fileData yamlSettings) {
	if fileData.FocusMinutes > 0 {
		loaded.FocusDuration = time.Duration(fileData.FocusMinutes) * time.Minute
	}
	if fileData.ShortBreakMinutes > 0 {
		loaded.ShortBreakDuration = time.Duration(fileData.ShortBreakMinutes) * time.Minute
	}
	if fileData.LongBreakMinutes > 0 {
		loaded.LongBreakDuration = time.Duration(fileData.LongBreakMinutes) * time.Minute
	}
	if fileData.DemoSeconds > 0 {
		loaded.DemoDuration = time.Duration(fileData.DemoSeconds) * time.Second
	}

	loaded.DemoUnlocked = fileData.DemoUnlocked
	loaded.CloseToTray = fileData.CloseToTray
}
