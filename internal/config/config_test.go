package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Source != "0" {
		t.Errorf("Source = %q, want %q", cfg.Source, "0")
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":8080")
	}
}

func TestLoadPartialFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "source: sample.avi\ngesture:\n  swipe_threshold: 150\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Source != "sample.avi" {
		t.Errorf("Source = %q, want %q", cfg.Source, "sample.avi")
	}
	if cfg.Gesture.SwipeThreshold != 150 {
		t.Errorf("SwipeThreshold = %v, want 150", cfg.Gesture.SwipeThreshold)
	}
	if cfg.Gesture.ScrollThreshold != 80 {
		t.Errorf("ScrollThreshold = %v, want default 80", cfg.Gesture.ScrollThreshold)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("sorce: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted a misspelled field")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"empty source", func(c *Config) { c.Source = "" }, true},
		{"idle above active fps", func(c *Config) { c.Capture.IdleFPS = 30 }, true},
		{"smoothing below one", func(c *Config) { c.Gesture.Smoothing = 0.5 }, true},
		{"negative debounce", func(c *Config) { c.Gesture.ClickDebounceMS = -1 }, true},
		{"zero swipe threshold", func(c *Config) { c.Gesture.SwipeThreshold = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGestureConfigConversion(t *testing.T) {
	cfg := Default()
	cfg.Gesture.ClickDebounceMS = 250
	cfg.Gesture.PauseHoldMS = 500

	g := cfg.GestureConfig()
	if g.ClickDebounce != 250*time.Millisecond {
		t.Errorf("ClickDebounce = %v, want 250ms", g.ClickDebounce)
	}
	if g.PauseHold != 500*time.Millisecond {
		t.Errorf("PauseHold = %v, want 500ms", g.PauseHold)
	}
	if g.FrameWidth != 480 || g.FrameHeight != 360 {
		t.Errorf("frame size = %dx%d, want 480x360", g.FrameWidth, g.FrameHeight)
	}
}
