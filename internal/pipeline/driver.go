// Package pipeline drives rendering: each captured frame is rasterized at
// the resolution current when it is taken, then handed to an output sink.
package pipeline

import (
	"context"
	"errors"
	"image"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/asciicam/internal/ascii"
	"github.com/vovakirdan/asciicam/internal/capture"
	"github.com/vovakirdan/asciicam/internal/core"
	"github.com/vovakirdan/asciicam/internal/filter"
)

// Frame is one rendered text frame.
type Frame struct {
	Seq        uint64          // 1-based render sequence number
	Screen     *core.Screen    // The glyph grid
	Resolution core.Resolution // Resolution the grid was rendered at
	CapturedAt time.Time       // When the source delivered the image
	Stats      Stats           // Driver counters at render time
}

// Text returns the frame as newline-terminated rows.
func (f Frame) Text() string {
	return f.Screen.String()
}

// Stats is a snapshot of driver counters.
type Stats struct {
	Session  string // Unique ID of this driver
	Source   string // Name of the running source
	Offered  uint64 // Frames delivered by the source
	Rendered uint64 // Frames shown
	Dropped  uint64 // Frames superseded before rendering
}

// Sink receives rendered frames. Each call replaces the previous frame.
type Sink interface {
	Show(frame Frame) error
}

// StopNotifier is implemented by sinks that want to know when the source
// has stopped for good.
type StopNotifier interface {
	SourceStopped(err error)
}

// Config wires a Driver.
type Config struct {
	State      *core.State
	Rasterizer *ascii.Rasterizer
	Filter     filter.Filter // Optional; nil means no filter
	Sink       Sink
	Logger     *log.Logger // Optional
}

// Driver renders frames from one source. Use New, then Run once.
type Driver struct {
	state  *core.State
	raster *ascii.Rasterizer
	filter filter.Filter
	sink   Sink
	logger *log.Logger

	session string
	source  atomic.Pointer[string]
	box     *mailbox

	offered  atomic.Uint64
	rendered atomic.Uint64
}

// New creates a Driver from cfg.
func New(cfg Config) (*Driver, error) {
	if cfg.State == nil || cfg.Rasterizer == nil || cfg.Sink == nil {
		return nil, errors.New("pipeline: state, rasterizer and sink are required")
	}
	if cfg.Filter == nil {
		cfg.Filter = filter.None{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	d := &Driver{
		state:   cfg.State,
		raster:  cfg.Rasterizer,
		filter:  cfg.Filter,
		sink:    cfg.Sink,
		session: uuid.NewString(),
		box:     newMailbox(),
	}
	d.logger = cfg.Logger.WithPrefix("pipeline").With("session", d.session[:8])
	return d, nil
}

// Offer hands a captured frame to the render loop without blocking.
// An older frame that has not been rendered yet is dropped.
func (d *Driver) Offer(img image.Image) {
	d.offered.Add(1)
	d.box.put(img, time.Now())
}

// Run starts src and renders its frames until ctx is cancelled (returns nil)
// or the source stops on its own (returns the source's error). Either way the
// caller's other activities, such as the control listener, are unaffected.
func (d *Driver) Run(ctx context.Context, src capture.Source) error {
	name := src.Name()
	d.source.Store(&name)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, d.box.close)
	defer stop()

	srcDone := make(chan error, 1)
	go func() {
		err := src.Start(ctx, d.Offer)
		d.box.close()
		srcDone <- err
	}()

	d.logger.Info("rendering", "source", name, "resolution", d.state.Read().String(), "filter", d.filter.Name())
	d.renderLoop()

	err := <-srcDone
	if err == nil || ctx.Err() != nil {
		d.logger.Debug("stopped", "rendered", d.rendered.Load(), "dropped", d.box.dropped())
		return nil
	}

	if errors.Is(err, capture.ErrEndOfStream) {
		d.logger.Info("source finished", "source", name, "rendered", d.rendered.Load())
	} else {
		d.logger.Error("frame source failed", "source", name, "error", err)
	}
	if n, ok := d.sink.(StopNotifier); ok {
		n.SourceStopped(err)
	}
	return err
}

// renderLoop renders one frame at a time until the mailbox closes.
func (d *Driver) renderLoop() {
	for {
		p, ok := d.box.take()
		if !ok {
			return
		}
		d.render(p)
	}
}

// render rasterizes one frame against a single State snapshot.
func (d *Driver) render(p pending) {
	res := d.state.Read()
	img := d.filter.Apply(p.img)
	screen := d.raster.Rasterize(img, res.Width, res.Height)

	seq := d.rendered.Add(1)
	frame := Frame{
		Seq:        seq,
		Screen:     screen,
		Resolution: res,
		CapturedAt: p.capturedAt,
		Stats:      d.Stats(),
	}
	if err := d.sink.Show(frame); err != nil {
		d.logger.Warn("sink rejected frame", "seq", seq, "error", err)
	}
}

// Stats returns a snapshot of the driver counters.
func (d *Driver) Stats() Stats {
	var source string
	if p := d.source.Load(); p != nil {
		source = *p
	}
	return Stats{
		Session:  d.session,
		Source:   source,
		Offered:  d.offered.Load(),
		Rendered: d.rendered.Load(),
		Dropped:  d.box.dropped(),
	}
}
