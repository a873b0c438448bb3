package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/uikit-kiosk"
	configFileName = "config.yaml"
)

// Config is the kiosk configuration.
type Config struct {
	Resources    string         `yaml:"resources"`
	Window       WindowConfig   `yaml:"window"`
	Fonts        FontsConfig    `yaml:"fonts"`
	Status       StatusConfig   `yaml:"status"`
	Clock        ClockConfig    `yaml:"clock"`
	Launcher     LauncherConfig `yaml:"launcher"`
	Display      DisplayConfig  `yaml:"display"`
	FadeDuration time.Duration  `yaml:"fade_duration"`
	Debug        bool           `yaml:"debug"`
}

// WindowConfig places the kiosk window. A zero size fills the screen.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FontsConfig names the families looked up in <resources>/fonts.
type FontsConfig struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// StatusConfig holds the operator name shown in the status bar.
type StatusConfig struct {
	Name string `yaml:"name"`
}

// ClockConfig holds the tab bar clock layout, in Go reference time.
type ClockConfig struct {
	Format string `yaml:"format"`
}

// LauncherConfig controls how external applications are started and placed
// over the kiosk's content area.
type LauncherConfig struct {
	Enabled bool          `yaml:"enabled"`
	Delay   time.Duration `yaml:"delay"`
	Display string        `yaml:"display"`
	X       int           `yaml:"x"`
	Y       int           `yaml:"y"`
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	LogFile string        `yaml:"log_file"` // default <resources>/log
	Mail    AppCommand    `yaml:"mail"`
	Files   AppCommand    `yaml:"files"`
}

// AppCommand is a program to start and the window title to search for once
// it is running.
type AppCommand struct {
	Command []string `yaml:"command"`
	Window  string   `yaml:"window"`
}

// DisplayConfig is the xrandr mode applied before the window opens.
type DisplayConfig struct {
	Enabled bool   `yaml:"enabled"`
	Output  string `yaml:"output"`
	Mode    string `yaml:"mode"`
	Rate    int    `yaml:"rate"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Resources: "./resources",
		Window: WindowConfig{
			Title:  "demo",
			Width:  1920,
			Height: 1080,
		},
		Fonts: FontsConfig{
			Title: "Aristotelica Small Caps",
			Body:  "Gabriely Extra Light",
		},
		Status: StatusConfig{Name: "АНДРЕЙ АРУТЮНЯН"},
		Clock:  ClockConfig{Format: "02.01.2006 15:04"},
		Launcher: LauncherConfig{
			Enabled: true,
			Delay:   2 * time.Second,
			Display: ":0",
			X:       45,
			Y:       284,
			Width:   1830,
			Height:  711,
			Mail:    AppCommand{Command: []string{"thunderbird"}, Window: "Thunderbird"},
			Files:   AppCommand{Command: []string{"nautilus", "/home/parallels/"}, Window: "Home"},
		},
		Display: DisplayConfig{
			Enabled: true,
			Output:  "Virtual-1",
			Mode:    "1920x1080",
			Rate:    60,
		},
	}
}

// LoadConfig layers the defaults, the user file and, when path is not
// empty, an explicit file. Keys present in a later layer replace earlier
// values; absent keys are kept. A missing user file is not an error; a
// missing explicit file is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	userPath, err := getUserConfigPath()
	if err == nil {
		if _, statErr := os.Stat(userPath); statErr == nil {
			if err := loadConfigFile(userPath, &cfg); err != nil {
				return Config{}, fmt.Errorf("error loading user config from %s: %w", userPath, err)
			}
		}
	}

	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
		}
	}

	if cfg.Launcher.LogFile == "" {
		cfg.Launcher.LogFile = filepath.Join(cfg.Resources, "log")
	}
	return cfg, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

// loadConfigFile decodes the YAML file at path on top of cfg.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// FontsDir returns the directory scanned for font families.
func (c Config) FontsDir() string {
	return filepath.Join(c.Resources, "fonts")
}

// Image returns the path of a bitmap in the resources directory.
func (c Config) Image(name string) string {
	return filepath.Join(c.Resources, "images", name)
}
