// Package images plays back still images (PNG, JPEG, GIF) as a frame source.
// Animated GIFs contribute every frame.
package images

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vovakirdan/asciicam/internal/capture"
)

// Kind is the registry name of this source.
const Kind = "images"

func init() {
	capture.Register(Kind, "Image files (PNG, JPEG, GIF) matched by --path", New)
}

// Source cycles through the files matched by a glob.
type Source struct {
	pattern  string
	files    []string
	interval time.Duration
	loop     bool
}

// New resolves opts.Path as a glob; it fails if nothing matches.
func New(opts capture.Options) (capture.Source, error) {
	if opts.Path == "" {
		return nil, errors.New("images: path is required")
	}
	files, err := filepath.Glob(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("images: bad pattern %q: %w", opts.Path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("images: no files match %q", opts.Path)
	}
	sort.Strings(files)

	return &Source{
		pattern:  opts.Path,
		files:    files,
		interval: opts.Interval(),
		loop:     opts.Loop,
	}, nil
}

// Name implements capture.Source.
func (s *Source) Name() string {
	return Kind + ":" + s.pattern
}

// Files returns the matched files in playback order.
func (s *Source) Files() []string {
	return s.files
}

// Start implements capture.Source. Without looping it returns
// capture.ErrEndOfStream after the last frame.
func (s *Source) Start(ctx context.Context, deliver capture.DeliverFunc) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		for _, path := range s.files {
			frames, err := Load(path)
			if err != nil {
				return err
			}
			for _, frame := range frames {
				deliver(frame)
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}
			}
		}
		if !s.loop {
			return capture.ErrEndOfStream
		}
	}
}

// Load decodes every frame in an image file.
func Load(path string) ([]image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("images: cannot open %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".gif") {
		g, err := gif.DecodeAll(f)
		if err != nil {
			return nil, fmt.Errorf("images: cannot decode %s: %w", path, err)
		}
		return compose(g), nil
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("images: cannot decode %s: %w", path, err)
	}
	return []image.Image{img}, nil
}

// compose flattens GIF frames onto a full-size canvas, since later frames
// may only cover the region that changed.
func compose(g *gif.GIF) []image.Image {
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() && len(g.Image) > 0 {
		bounds = g.Image[0].Bounds()
	}

	canvas := image.NewRGBA(bounds)
	frames := make([]image.Image, 0, len(g.Image))
	for i, frame := range g.Image {
		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)

		snapshot := image.NewRGBA(bounds)
		copy(snapshot.Pix, canvas.Pix)
		frames = append(frames, snapshot)

		if i < len(g.Disposal) && g.Disposal[i] == gif.DisposalBackground {
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		}
	}
	return frames
}
