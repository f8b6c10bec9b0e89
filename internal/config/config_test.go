package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 80 || cfg.Height != 24 {
		t.Errorf("expected 80x24 grid, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Scale != 20 || cfg.Distance != 3 {
		t.Errorf("expected scale 20 distance 3, got %f %f", cfg.Scale, cfg.Distance)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid", func(c *Config) { c.Width = 1 }},
		{"zero scale", func(c *Config) { c.Scale = 0 }},
		{"negative distance", func(c *Config) { c.Distance = -1 }},
		{"zero cube", func(c *Config) { c.CubeSize = 0 }},
		{"cube reaches eye plane", func(c *Config) { c.CubeSize = 3 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"absurd fps", func(c *Config) { c.FPS = 10000 }},
		{"empty marker", func(c *Config) { c.Marker = "" }},
		{"wide marker", func(c *Config) { c.Marker = "##" }},
		{"zero step", func(c *Config) { c.Step = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error does not wrap ErrInvalid: %v", err)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spincube.yaml")

	cfg := DefaultConfig()
	cfg.FPS = 60
	cfg.Marker = "*"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := Save(path, &Config{Width: 80, Height: 24, Scale: -5, Distance: 3, CubeSize: 1, FPS: 33, Marker: "#", Step: 0.1}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error loading invalid config")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FPS = 33
	if got := cfg.Interval(); got != time.Second/33 {
		t.Errorf("interval = %v, want %v", got, time.Second/33)
	}
}
