// ABOUTME: Widget configuration loading
// ABOUTME: Compiled defaults overridden by CLOCKWIDGET_* environment variables via koanf
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks the environment variables read by Load
const EnvPrefix = "CLOCKWIDGET_"

// Sync modes
const (
	SyncSimulated = "simulated"
	SyncNTP       = "ntp"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config holds all widget configuration
type Config struct {
	Display DisplayConfig `koanf:"display"`
	Sync    SyncConfig    `koanf:"sync"`
	Log     LogConfig     `koanf:"log"`
	UI      UIConfig      `koanf:"ui"`
}

// DisplayConfig controls the refresh cadence and readout
type DisplayConfig struct {
	FPS    int  `koanf:"fps"`
	Centis bool `koanf:"centis"` // show the centisecond field
}

// SyncConfig controls the periodic sync check
type SyncConfig struct {
	Mode     string        `koanf:"mode"`
	Interval time.Duration `koanf:"interval"`
	Latency  time.Duration `koanf:"latency"` // simulated mode only
	Fail     bool          `koanf:"fail"`    // simulated mode only
	Server   string        `koanf:"server"`  // ntp mode only
	Timeout  time.Duration `koanf:"timeout"` // ntp mode only
	Correct  bool          `koanf:"correct"` // add the measured offset to the display
}

// LogConfig controls log output
type LogConfig struct {
	File string `koanf:"file"`
}

// UIConfig controls the terminal front end
type UIConfig struct {
	NoTUI      bool `koanf:"notui"`
	Fullscreen bool `koanf:"fullscreen"` // start on the alternate screen
}

// Defaults returns the compiled default configuration
func Defaults() *Config {
	return &Config{
		Display: DisplayConfig{
			FPS:    30,
			Centis: true,
		},
		Sync: SyncConfig{
			Mode:     SyncSimulated,
			Interval: 60 * time.Second,
			Latency:  800 * time.Millisecond,
			Server:   "pool.ntp.org",
			Timeout:  5 * time.Second,
		},
		Log: LogConfig{
			File: "clockwidget.log",
		},
		UI: UIConfig{
			Fullscreen: true,
		},
	}
}

// Load reads the environment over the compiled defaults.
// CLOCKWIDGET_SYNC_INTERVAL=30s sets sync.interval.
func Load() (*Config, error) {
	return load(env.Provider(EnvPrefix, ".", envKey))
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func load(p koanf.Provider) (*Config, error) {
	k := koanf.New(".")
	cfg := Defaults()

	if err := k.Load(p, nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	if c.Display.FPS <= 0 || c.Display.FPS > 240 {
		return fmt.Errorf("%w: display.fps must be in 1..240, got %d", ErrInvalid, c.Display.FPS)
	}
	if c.Sync.Interval <= 0 {
		return fmt.Errorf("%w: sync.interval must be positive, got %v", ErrInvalid, c.Sync.Interval)
	}
	if c.Sync.Latency < 0 {
		return fmt.Errorf("%w: sync.latency must not be negative, got %v", ErrInvalid, c.Sync.Latency)
	}

	switch c.Sync.Mode {
	case SyncSimulated:
	case SyncNTP:
		if c.Sync.Server == "" {
			return fmt.Errorf("%w: sync.server is required in ntp mode", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown sync.mode %q", ErrInvalid, c.Sync.Mode)
	}

	return nil
}

// FrameInterval is the time between refreshes
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Display.FPS)
}
