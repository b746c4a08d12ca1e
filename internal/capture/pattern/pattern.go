// Package pattern provides a synthetic frame source: a diagonal gradient
// with a bright disc orbiting the centre. Useful without a camera.
package pattern

import (
	"context"
	"image"
	"math"
	"time"

	"github.com/vovakirdan/asciicam/internal/capture"
)

// Kind is the registry name of this source.
const Kind = "pattern"

func init() {
	capture.Register(Kind, "Synthetic moving test pattern", New)
}

// Source generates frames on a fixed interval.
type Source struct {
	width    int
	height   int
	interval time.Duration
}

// New builds a pattern source. Zero sizes default to 320x240.
func New(opts capture.Options) (capture.Source, error) {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 320
	}
	if h <= 0 {
		h = 240
	}
	return &Source{width: w, height: h, interval: opts.Interval()}, nil
}

// Name implements capture.Source.
func (s *Source) Name() string {
	return Kind
}

// Start implements capture.Source.
func (s *Source) Start(ctx context.Context, deliver capture.DeliverFunc) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var tick int
	for {
		deliver(Frame(s.width, s.height, tick))
		tick++

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Frame renders pattern frame number tick. The result depends only on its arguments.
func Frame(width, height, tick int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))

	angle := float64(tick) * 0.1
	cx := float64(width)/2 + math.Cos(angle)*float64(width)/4
	cy := float64(height)/2 + math.Sin(angle)*float64(height)/4
	radius := float64(min(width, height)) / 6

	span := width + height
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8((x + y) * 200 / span)
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= radius*radius {
				v = 255
			}
			img.Pix[y*img.Stride+x] = v
		}
	}
	return img
}
