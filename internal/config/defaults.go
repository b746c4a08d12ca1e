package config

import (
	_ "embed"

	"github.com/vovakirdan/asciicam/internal/ascii"
	"github.com/vovakirdan/asciicam/internal/control"
	"github.com/vovakirdan/asciicam/internal/core"
	"github.com/vovakirdan/asciicam/internal/filter"
)

//go:embed defaults/asciicam.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	res := core.DefaultResolution()
	b := core.DefaultBounds()
	return Config{
		Render: RenderConfig{
			Ramp:   ascii.DefaultGlyphs,
			Width:  res.Width,
			Height: res.Height,
			Bounds: BoundsConfig{
				MinWidth:  b.MinWidth,
				MaxWidth:  b.MaxWidth,
				MinHeight: b.MinHeight,
				MaxHeight: b.MaxHeight,
			},
			Tint:   "default",
			Filter: filter.NameNone,
		},
		Control: ControlConfig{
			Listen: control.DefaultAddress,
		},
		Source: SourceConfig{
			Kind:   "camera",
			Width:  320,
			Height: 240,
			FPS:    15,
			Loop:   true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
