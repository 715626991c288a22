// Package config loads the TOML configuration, layering the file in the
// working directory over the one under ~/.config/snackbar, and watches
// both locations for edits while the program runs.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/snackbar/internal/notification"
)

type Config struct {
	LogFile string `koanf:"log_file"` // debug log destination, empty disables logging
	Icons   string `koanf:"icons"`    // "nerd", "unicode", or "none"

	// Notification bar behaviour
	Notifications NotificationsConfig `koanf:"notifications"`

	// Local notification history (enables the history popup when on)
	History HistoryConfig `koanf:"history"`

	// Desktop mirroring (forwards bars to the desktop notification daemon)
	Desktop DesktopConfig `koanf:"desktop"`
}

// NotificationsConfig holds bar appearance and timing configuration.
type NotificationsConfig struct {
	DefaultDurationMS int `koanf:"default_duration_ms"` // auto-dismiss delay (default: 1500)
	MaxWidth          int `koanf:"max_width"`           // bar width cap in columns (0 = host width)
}

// HistoryConfig holds notification history configuration.
type HistoryConfig struct {
	Enabled *bool `koanf:"enabled"` // record shown notifications (default: true)
	Keep    int   `koanf:"keep"`    // rows retained before pruning (default: 200)
}

// DesktopConfig holds desktop notification mirroring configuration.
type DesktopConfig struct {
	Mirror  bool   `koanf:"mirror"`   // forward bars over D-Bus (default: false)
	AppName string `koanf:"app_name"` // identity reported to the daemon (default: "snackbar")
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Missing files are fine; a file that exists but fails to parse is not.
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.LogFile = expandPath(cfg.LogFile)
	return cfg, nil
}

// getConfigPaths lists candidate config files, lowest priority first.
func getConfigPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "snackbar", "config.toml"))
	}
	// The working directory copy loads last, so it wins.
	return append(paths, "config.toml")
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DefaultDuration returns the configured auto-dismiss delay, falling back to
// the library default when unset or invalid.
func (c *Config) DefaultDuration() time.Duration {
	if c.Notifications.DefaultDurationMS <= 0 {
		return notification.DefaultDuration
	}
	return time.Duration(c.Notifications.DefaultDurationMS) * time.Millisecond
}

// IconStyle returns the configured glyph style, defaulting to unicode.
func (c *Config) IconStyle() string {
	if c.Icons == "" {
		return "unicode"
	}
	return c.Icons
}

// HistoryEnabled returns true unless history has been switched off explicitly.
func (c *Config) HistoryEnabled() bool {
	if c.History.Enabled == nil {
		return true
	}
	return *c.History.Enabled
}

// GetHistoryConfig returns the history configuration with defaults applied.
func (c *Config) GetHistoryConfig() HistoryConfig {
	cfg := c.History

	if cfg.Keep <= 0 {
		cfg.Keep = 200
	}

	return cfg
}

// DesktopAppName returns the identity reported to the notification daemon.
func (c *Config) DesktopAppName() string {
	if c.Desktop.AppName == "" {
		return "snackbar"
	}
	return c.Desktop.AppName
}
