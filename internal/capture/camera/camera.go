// Package camera captures frames from a video device through GStreamer.
//
// Pipeline:
//
//	<device> → videoconvert → videoscale → videorate → capsfilter(RGB) → appsink
//
// The appsink keeps only the newest buffer and drops the rest, so a slow
// consumer never builds a queue inside GStreamer.
package camera

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tinyzimmer/go-gst/gst"
	"github.com/tinyzimmer/go-gst/gst/app"

	"github.com/vovakirdan/asciicam/internal/capture"
)

// Kind is the registry name of this source.
const Kind = "camera"

// DefaultDevice lets GStreamer pick the platform camera element.
const DefaultDevice = "autovideosrc"

func init() {
	capture.Register(Kind, "Live camera via GStreamer (--device /dev/video0, autovideosrc, ...)", New)
}

// Source is a GStreamer-backed camera.
type Source struct {
	device string
	width  int
	height int
	fps    float64
	logger *log.Logger

	frames atomic.Uint64
}

// New builds a camera source. Zero sizes default to 320x240 at 15 fps.
func New(opts capture.Options) (capture.Source, error) {
	s := &Source{
		device: opts.Device,
		width:  opts.Width,
		height: opts.Height,
		fps:    opts.FPS,
		logger: opts.Log().WithPrefix("camera"),
	}
	if s.device == "" {
		s.device = DefaultDevice
	}
	if s.width <= 0 {
		s.width = 320
	}
	if s.height <= 0 {
		s.height = 240
	}
	if s.fps <= 0 {
		s.fps = 15
	}
	// GStreamer pads RGB rows to 4 bytes; widths divisible by 4 stay packed.
	s.width = (s.width + 3) &^ 3
	return s, nil
}

// Name implements capture.Source.
func (s *Source) Name() string {
	return Kind + ":" + s.device
}

// Frames returns how many frames were pulled from the device.
func (s *Source) Frames() uint64 {
	return s.frames.Load()
}

// Start implements capture.Source.
func (s *Source) Start(ctx context.Context, deliver capture.DeliverFunc) error {
	gst.Init(nil)

	launch := LaunchLine(s.device, s.width, s.height, s.fps)
	pipeline, err := gst.NewPipelineFromString(launch)
	if err != nil {
		return fmt.Errorf("camera: cannot build pipeline %q: %w", launch, err)
	}

	elem, err := pipeline.GetElementByName("sink")
	if err != nil {
		return fmt.Errorf("camera: appsink missing: %w", err)
	}
	sink := app.SinkFromElement(elem)
	sink.SetCallbacks(&app.SinkCallbacks{
		NewSampleFunc: func(sink *app.Sink) gst.FlowReturn {
			return s.onSample(sink, deliver)
		},
	})

	if err := pipeline.SetState(gst.StatePlaying); err != nil {
		return fmt.Errorf("camera: cannot start %s: %w", s.device, err)
	}
	defer func() {
		if err := pipeline.SetState(gst.StateNull); err != nil {
			s.logger.Warn("failed to stop pipeline", "error", err)
		}
	}()

	s.logger.Info("capturing", "device", s.device, "width", s.width, "height", s.height, "fps", s.fps)
	return s.watchBus(ctx, pipeline)
}

// onSample runs on the GStreamer streaming thread, one sample at a time.
func (s *Source) onSample(sink *app.Sink, deliver capture.DeliverFunc) gst.FlowReturn {
	sample := sink.PullSample()
	if sample == nil {
		// A single bad sample should not kill the stream.
		s.logger.Warn("failed to pull sample, skipping frame")
		return gst.FlowOK
	}

	buffer := sample.GetBuffer()
	if buffer == nil {
		s.logger.Warn("sample without buffer, skipping frame")
		return gst.FlowOK
	}

	mapInfo := buffer.Map(gst.MapRead)
	data := mapInfo.Bytes()
	if len(data) == 0 {
		buffer.Unmap()
		return gst.FlowOK
	}

	// GStreamer reuses the buffer once we unmap it.
	pix := make([]byte, len(data))
	copy(pix, data)
	buffer.Unmap()

	img := capture.NewRGBImage(pix, s.width, s.height)
	if img == nil {
		s.logger.Warn("short frame, skipping", "bytes", len(pix))
		return gst.FlowOK
	}

	s.frames.Add(1)
	deliver(img)
	return gst.FlowOK
}

// watchBus polls the pipeline bus until ctx is done or the device fails.
func (s *Source) watchBus(ctx context.Context, pipeline *gst.Pipeline) error {
	bus := pipeline.GetPipelineBus()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// Short timeout keeps shutdown responsive.
		msg := bus.TimedPop(50 * time.Millisecond)
		if msg == nil {
			continue
		}

		switch msg.Type() {
		case gst.MessageEOS:
			return capture.ErrEndOfStream

		case gst.MessageError:
			gerr := msg.ParseError()
			s.logger.Debug("pipeline error",
				"error", gerr.Error(),
				"debug", gerr.DebugString(),
				"frames", s.frames.Load(),
			)
			return fmt.Errorf("camera: %s: %s", s.device, gerr.Error())

		case gst.MessageStateChanged:
			if msg.Source() == pipeline.GetName() {
				old, next := msg.ParseStateChanged()
				s.logger.Debug("pipeline state changed", "from", old, "to", next)
			}
		}
	}
}

// LaunchLine builds the gst-launch description for a device.
// A device path such as /dev/video0 selects v4l2src; anything else is used
// as the source element description verbatim.
func LaunchLine(device string, width, height int, fps float64) string {
	src := device
	if strings.HasPrefix(device, "/dev/") {
		src = "v4l2src device=" + device
	}
	return fmt.Sprintf(
		"%s ! videoconvert ! videoscale ! videorate drop-only=true ! %s ! appsink name=sink sync=false max-buffers=1 drop=true",
		src, rgbCaps(width, height, fps),
	)
}

// rgbCaps builds a caps string with a framerate constraint.
// Fractional rates below 1 fps become 1/N.
func rgbCaps(width, height int, fps float64) string {
	numerator, denominator := 1, 1
	if fps < 1.0 {
		denominator = int(1.0 / fps)
	} else {
		numerator = int(fps)
	}
	return fmt.Sprintf(
		"video/x-raw,format=RGB,width=%d,height=%d,framerate=%d/%d",
		width, height, numerator, denominator,
	)
}
