// Package config provides YAML-based configuration loading for asciicam.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/asciicam/internal/ascii"
	"github.com/vovakirdan/asciicam/internal/core"
	"github.com/vovakirdan/asciicam/internal/filter"
)

// ErrInvalid is returned by Validate for unusable configuration.
var ErrInvalid = errors.New("config: invalid")

// Config contains all asciicam configuration.
type Config struct {
	Render   RenderConfig   `yaml:"render"`
	Control  ControlConfig  `yaml:"control"`
	Source   SourceConfig   `yaml:"source"`
	Log      LogConfig      `yaml:"log"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

// RenderConfig defines how frames become text.
type RenderConfig struct {
	Ramp   string       `yaml:"ramp"` // Glyphs from darkest to lightest
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Bounds BoundsConfig `yaml:"bounds"`
	Tint   string       `yaml:"tint"`
	Filter string       `yaml:"filter"`
}

// BoundsConfig defines the accepted resolution range.
type BoundsConfig struct {
	MinWidth  int `yaml:"min_width"`
	MaxWidth  int `yaml:"max_width"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
}

// ControlConfig defines the UDP control channel.
type ControlConfig struct {
	Listen string `yaml:"listen"` // host:port, empty disables the listener
}

// SourceConfig selects and tunes the frame source.
type SourceConfig struct {
	Kind   string `yaml:"kind"`
	Device string `yaml:"device"`
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Loop   bool   `yaml:"loop"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SnapshotConfig defines where snapshots are saved.
type SnapshotConfig struct {
	Dir string `yaml:"dir"`
}

// Resolution returns the configured initial resolution.
func (c Config) Resolution() core.Resolution {
	return core.Resolution{Width: c.Render.Width, Height: c.Render.Height}
}

// Bounds returns the configured clamp bounds.
func (c Config) Bounds() core.Bounds {
	b := c.Render.Bounds
	return core.Bounds{
		MinWidth:  b.MinWidth,
		MaxWidth:  b.MaxWidth,
		MinHeight: b.MinHeight,
		MaxHeight: b.MaxHeight,
	}
}

// Validate reports the first problem found, wrapped in ErrInvalid.
func (c Config) Validate() error {
	if _, err := ascii.ParseRamp(c.Render.Ramp); err != nil {
		return fmt.Errorf("%w: render.ramp: %v", ErrInvalid, err)
	}
	if !c.Bounds().Valid() {
		return fmt.Errorf("%w: render.bounds %+v", ErrInvalid, c.Render.Bounds)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("%w: render size %dx%d", ErrInvalid, c.Render.Width, c.Render.Height)
	}
	if _, err := core.ParseTint(c.Render.Tint); err != nil {
		return fmt.Errorf("%w: render.tint: %v", ErrInvalid, err)
	}
	if _, err := filter.ByName(c.Render.Filter); err != nil {
		return fmt.Errorf("%w: render.filter: %v", ErrInvalid, err)
	}
	if strings.TrimSpace(c.Source.Kind) == "" {
		return fmt.Errorf("%w: source.kind is empty", ErrInvalid)
	}
	if c.Source.FPS <= 0 {
		return fmt.Errorf("%w: source.fps must be positive, got %d", ErrInvalid, c.Source.FPS)
	}
	if c.Source.Width < 0 || c.Source.Height < 0 {
		return fmt.Errorf("%w: source size %dx%d", ErrInvalid, c.Source.Width, c.Source.Height)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}
