// Package config loads the YAML configuration file and maps it onto the
// runtime settings of the capture and gesture packages.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ayusman/mudra/internal/gesture"
)

// Config is the top-level YAML configuration. Defaults are applied before
// decoding, so a partial file only overrides what it mentions.
type Config struct {
	// Source is a camera device index ("0") or a video file path.
	Source string `yaml:"source"`

	// Record, when non-empty, is the directory session recordings are written to.
	Record string `yaml:"record,omitempty"`

	// Addr is the dashboard listen address.
	Addr string `yaml:"addr"`

	// DataDir holds the sqlite database and downloaded support files.
	DataDir string `yaml:"data_dir"`

	Capture CaptureConfig `yaml:"capture"`
	Gesture GestureConfig `yaml:"gesture"`
}

// CaptureConfig tunes the frame pipeline.
type CaptureConfig struct {
	IdleFPS         float64 `yaml:"idle_fps"`
	ActiveFPS       float64 `yaml:"active_fps"`
	MotionThreshold float64 `yaml:"motion_threshold"`
}

// GestureConfig is the user-facing subset of gesture.Config, with durations
// expressed in milliseconds.
type GestureConfig struct {
	FrameMargin       int     `yaml:"frame_margin"`
	Smoothing         float64 `yaml:"smoothing"`
	ClickDebounceMS   int     `yaml:"click_debounce_ms"`
	SwipeThreshold    float64 `yaml:"swipe_threshold"`
	ScrollThreshold   float64 `yaml:"scroll_threshold"`
	SwipeCooldownMS   int     `yaml:"swipe_cooldown_ms"`
	ScrollCooldownMS  int     `yaml:"scroll_cooldown_ms"`
	PauseHoldMS       int     `yaml:"pause_hold_ms"`
}

// Default returns a fully populated Config.
func Default() Config {
	g := gesture.DefaultConfig()
	return Config{
		Source:  "0",
		Addr:    ":8080",
		DataDir: "~/.mudra",
		Capture: CaptureConfig{
			IdleFPS:         2,
			ActiveFPS:       15,
			MotionThreshold: 1.0,
		},
		Gesture: GestureConfig{
			FrameMargin:      g.FrameMargin,
			Smoothing:        g.Smoothing,
			ClickDebounceMS:  int(g.ClickDebounce / time.Millisecond),
			SwipeThreshold:   g.SwipeThreshold,
			ScrollThreshold:  g.ScrollThreshold,
			SwipeCooldownMS:  int(g.SwipeCooldown / time.Millisecond),
			ScrollCooldownMS: int(g.ScrollCooldown / time.Millisecond),
			PauseHoldMS:      int(g.PauseHold / time.Millisecond),
		},
	}
}

// Load reads a YAML config file on top of the defaults. A missing file is not
// an error; the defaults are returned so first runs need no setup.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks invariants after defaults and file contents are merged.
func (c *Config) Validate() error {
	if c.Source == "" {
		return errors.New("source must not be empty")
	}
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.Capture.IdleFPS <= 0 || c.Capture.ActiveFPS <= 0 {
		return errors.New("capture fps values must be > 0")
	}
	if c.Capture.IdleFPS > c.Capture.ActiveFPS {
		return errors.New("capture.idle_fps must be <= capture.active_fps")
	}
	if c.Gesture.Smoothing < 1 {
		return errors.New("gesture.smoothing must be >= 1")
	}
	if c.Gesture.FrameMargin < 0 {
		return errors.New("gesture.frame_margin must be >= 0")
	}
	if c.Gesture.SwipeThreshold <= 0 || c.Gesture.ScrollThreshold <= 0 {
		return errors.New("gesture thresholds must be > 0")
	}
	if c.Gesture.ClickDebounceMS < 0 || c.Gesture.SwipeCooldownMS < 0 ||
		c.Gesture.ScrollCooldownMS < 0 || c.Gesture.PauseHoldMS < 0 {
		return errors.New("gesture durations must be >= 0")
	}
	return nil
}

// GestureConfig converts the file settings into the engine configuration.
func (c *Config) GestureConfig() gesture.Config {
	g := gesture.DefaultConfig()
	g.FrameMargin = c.Gesture.FrameMargin
	g.Smoothing = c.Gesture.Smoothing
	g.ClickDebounce = time.Duration(c.Gesture.ClickDebounceMS) * time.Millisecond
	g.SwipeThreshold = c.Gesture.SwipeThreshold
	g.ScrollThreshold = c.Gesture.ScrollThreshold
	g.SwipeCooldown = time.Duration(c.Gesture.SwipeCooldownMS) * time.Millisecond
	g.ScrollCooldown = time.Duration(c.Gesture.ScrollCooldownMS) * time.Millisecond
	g.PauseHold = time.Duration(c.Gesture.PauseHoldMS) * time.Millisecond
	return g
}

// ExpandPath expands a leading "~" using $HOME.
func ExpandPath(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	if len(p) >= 2 && (p[1] == '/' || p[1] == '\\') {
		return filepath.Join(home, p[2:])
	}
	return p
}
