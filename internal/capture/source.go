// Package capture defines frame sources and a registry of source kinds.
// Source kinds register themselves in init() functions, so the CLI can offer
// every compiled-in source without hardcoded dependencies.
package capture

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/charmbracelet/log"
)

// ErrEndOfStream is returned by Start when a finite source runs out of frames.
var ErrEndOfStream = errors.New("capture: end of stream")

// DeliverFunc receives one decoded frame. The source calls it serially,
// never with more than one call in flight, and does not touch the image
// after the call returns.
type DeliverFunc func(frame image.Image)

// Source produces frames until stopped or until the device fails.
type Source interface {
	// Name identifies the source in logs (e.g., "camera:/dev/video0").
	Name() string

	// Start delivers frames to deliver until ctx is done, returning nil,
	// or until the source fails, returning the cause.
	Start(ctx context.Context, deliver DeliverFunc) error
}

// Options carry the source settings shared by all kinds.
// Each kind reads the fields that apply to it.
type Options struct {
	Device string  // Camera device or GStreamer source element
	Path   string  // File glob for image playback
	Width  int     // Capture width in pixels
	Height int     // Capture height in pixels
	FPS    float64 // Target frames per second
	Loop   bool    // Restart playback at the end of the input

	Logger *log.Logger // Optional; sources that log fall back to log.Default()
}

// Log returns o.Logger, or the default logger when unset.
func (o Options) Log() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// Interval returns the frame period for o.FPS, defaulting to 15 fps.
func (o Options) Interval() time.Duration {
	fps := o.FPS
	if fps <= 0 {
		fps = 15
	}
	return time.Duration(float64(time.Second) / fps)
}
