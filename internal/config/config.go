package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Process-wide rendering constants, initialized once and never mutated.
const (
	DefaultWidth    = 80
	DefaultHeight   = 24
	DefaultScale    = 20.0
	DefaultDistance = 3.0
	DefaultCubeSize = 1.0
	DefaultFPS      = 33
	DefaultMarker   = "#"
	DefaultStep     = 0.1
)

// ErrInvalid indicates a config value outside its valid range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the immutable per-run settings. Geometry topology (vertices
// and edges) is fixed; only scalar knobs are configurable.
type Config struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Scale    float64 `yaml:"scale"`
	Distance float64 `yaml:"distance"`
	CubeSize float64 `yaml:"cube_size"`
	FPS      int     `yaml:"fps"`
	Marker   string  `yaml:"marker"`
	Step     float64 `yaml:"step"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Scale:    DefaultScale,
		Distance: DefaultDistance,
		CubeSize: DefaultCubeSize,
		FPS:      DefaultFPS,
		Marker:   DefaultMarker,
		Step:     DefaultStep,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: grid must be at least 2x2, got %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %f", ErrInvalid, c.Scale)
	}
	if c.Distance <= 0 {
		return fmt.Errorf("%w: distance must be positive, got %f", ErrInvalid, c.Distance)
	}
	if c.CubeSize <= 0 {
		return fmt.Errorf("%w: cube size must be positive, got %f", ErrInvalid, c.CubeSize)
	}
	if c.CubeSize >= c.Distance {
		// Keeps the perspective divide away from a zero denominator.
		return fmt.Errorf("%w: cube size %f must stay below distance %f", ErrInvalid, c.CubeSize, c.Distance)
	}
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("%w: fps must be in [1,240], got %d", ErrInvalid, c.FPS)
	}
	if len(c.Marker) != 1 {
		return fmt.Errorf("%w: marker must be a single character, got %q", ErrInvalid, c.Marker)
	}
	if c.Step <= 0 {
		return fmt.Errorf("%w: step must be positive, got %f", ErrInvalid, c.Step)
	}
	return nil
}

// Interval converts the configured frame rate to a tick duration.
func (c *Config) Interval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// MarkerByte returns the marker glyph as a byte.
func (c *Config) MarkerByte() byte { return c.Marker[0] }
