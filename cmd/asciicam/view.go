package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vovakirdan/asciicam/internal/ascii"
	"github.com/vovakirdan/asciicam/internal/capture"
	"github.com/vovakirdan/asciicam/internal/config"
	"github.com/vovakirdan/asciicam/internal/control"
	"github.com/vovakirdan/asciicam/internal/core"
	"github.com/vovakirdan/asciicam/internal/filter"
	"github.com/vovakirdan/asciicam/internal/pipeline"
	"github.com/vovakirdan/asciicam/internal/platform/plain"
	"github.com/vovakirdan/asciicam/internal/platform/tui"
)

// Rows reserved below the frame for the TUI status bar and help line.
const tuiChromeRows = 2

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the live ASCII feed",
	Long: `Capture frames and render them as ASCII art until you quit.

The render resolution can be changed at any time by sending a UDP datagram
"<width>, <height>" to the control address (default :9000). Values are
clamped to the configured bounds (default 20-160 x 10-80).

Controls (interactive terminal):
  P/Space  - Pause display
  S        - Save the current frame to ~/.asciicam/snapshots
  ?        - Toggle help
  Q/Esc    - Quit

Examples:
  asciicam view
  asciicam view --device /dev/video1 --width 120 --height 50
  asciicam view --source images --path './frames/*.png' --fps 5
  asciicam view --source pattern --filter edges --tint amber
  asciicam view --plain > /dev/pts/3`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	addViewFlags(viewCmd.Flags())
}

func addViewFlags(f *pflag.FlagSet) {
	f.String("source", "", "Frame source: camera, images, pattern")
	f.String("device", "", "Camera device path or GStreamer source element")
	f.String("path", "", "File glob for the images source")
	f.String("listen", "", "UDP control address (empty string disables)")
	f.Int("width", 0, "Initial render width in characters")
	f.Int("height", 0, "Initial render height in characters")
	f.String("filter", "", "Frame filter: none, edges")
	f.Int("fps", 0, "Capture frame rate")
	f.String("tint", "", "Frame color: default, green, amber, cyan, white, gray")
	f.Bool("plain", false, "Write plain frames to stdout instead of the interactive view")
	f.Bool("fit", false, "Size the initial resolution to the terminal")
}

// applyViewFlags copies explicitly set flags over cfg.
func applyViewFlags(cfg *config.Config, flags *pflag.FlagSet) {
	str := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	num := func(name string, dst *int) {
		if flags.Changed(name) {
			*dst, _ = flags.GetInt(name)
		}
	}

	str("source", &cfg.Source.Kind)
	str("device", &cfg.Source.Device)
	str("path", &cfg.Source.Path)
	str("listen", &cfg.Control.Listen)
	str("filter", &cfg.Render.Filter)
	str("tint", &cfg.Render.Tint)
	num("width", &cfg.Render.Width)
	num("height", &cfg.Render.Height)
	num("fps", &cfg.Source.FPS)
}

// fitToTerminal sizes the render resolution to the terminal on fd.
func fitToTerminal(cfg *config.Config, fd int, reserved int) {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return
	}
	if w > 0 && h-reserved > 0 {
		cfg.Render.Width = w
		cfg.Render.Height = h - reserved
	}
}

func runView(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyViewFlags(&cfg, cmd.Flags())

	plainOut, _ := cmd.Flags().GetBool("plain")
	stdoutFd := int(os.Stdout.Fd())
	interactive := !plainOut && term.IsTerminal(stdoutFd)

	if fit, _ := cmd.Flags().GetBool("fit"); fit {
		reserved := 0
		if interactive {
			reserved = tuiChromeRows
		}
		fitToTerminal(&cfg, stdoutFd, reserved)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, logCloser, err := newLogger(cfg.Log, interactive)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	ramp, err := ascii.ParseRamp(cfg.Render.Ramp)
	if err != nil {
		return err
	}
	flt, err := filter.ByName(cfg.Render.Filter)
	if err != nil {
		return err
	}
	tint, err := core.ParseTint(cfg.Render.Tint)
	if err != nil {
		return err
	}

	state := core.NewState(cfg.Resolution(), cfg.Bounds())
	raster := ascii.NewRasterizer(ramp)

	src, err := capture.Create(cfg.Source.Kind, capture.Options{
		Device: cfg.Source.Device,
		Path:   cfg.Source.Path,
		Width:  cfg.Source.Width,
		Height: cfg.Source.Height,
		FPS:    float64(cfg.Source.FPS),
		Loop:   cfg.Source.Loop,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var controlAddr string
	if cfg.Control.Listen != "" {
		listener, err := control.Listen(cfg.Control.Listen, state, logger)
		if err != nil {
			return err
		}
		controlAddr = listener.Addr().String()
		go func() {
			if err := listener.Serve(ctx); err != nil {
				logger.Error("control listener stopped", "error", err)
			}
		}()
	}

	newDriver := func(sink pipeline.Sink) (*pipeline.Driver, error) {
		return pipeline.New(pipeline.Config{
			State:      state,
			Rasterizer: raster,
			Filter:     flt,
			Sink:       sink,
			Logger:     logger,
		})
	}

	logger.Info("starting", "source", src.Name(), "resolution", state.Read().String(), "control", controlAddr)

	if !interactive {
		return runPlain(ctx, logger, newDriver, src)
	}

	return tui.Run(ctx, tui.Options{
		Tint:        tint,
		Source:      src.Name(),
		ControlAddr: controlAddr,
		SnapshotDir: cfg.Snapshot.Dir,
		Placeholder: state.Read(),
	}, func(ctx context.Context, sink pipeline.Sink) {
		d, err := newDriver(sink)
		if err != nil {
			logger.Error("cannot start renderer", "error", err)
			if n, ok := sink.(pipeline.StopNotifier); ok {
				n.SourceStopped(err)
			}
			return
		}
		_ = d.Run(ctx, src)
	})
}

// runPlain streams frames to stdout. A stopped source leaves the process
// running, with the control channel still live, until it is signalled.
func runPlain(
	ctx context.Context,
	logger *log.Logger,
	newDriver func(pipeline.Sink) (*pipeline.Driver, error),
	src capture.Source,
) error {
	d, err := newDriver(plain.New(os.Stdout))
	if err != nil {
		return err
	}
	if err := d.Run(ctx, src); err != nil {
		logger.Info("waiting for interrupt", "reason", err)
		<-ctx.Done()
	}
	return nil
}
