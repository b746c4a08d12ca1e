package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/asciicam/internal/ascii"
	"github.com/vovakirdan/asciicam/internal/capture/images"
	"github.com/vovakirdan/asciicam/internal/filter"
)

var (
	flagRenderWidth  int
	flagRenderHeight int
	flagRenderFilter string
)

var renderCmd = &cobra.Command{
	Use:   "render <image>",
	Short: "Print an image as ASCII art",
	Long: `Rasterize a single PNG, JPEG or GIF file and print it to stdout.
Only the first frame of an animated GIF is used.

Examples:
  asciicam render photo.jpg
  asciicam render photo.jpg --width 120 --height 50 --filter edges`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntVar(&flagRenderWidth, "width", 0, "Width in characters (default from config)")
	renderCmd.Flags().IntVar(&flagRenderHeight, "height", 0, "Height in characters (default from config)")
	renderCmd.Flags().StringVar(&flagRenderFilter, "filter", "", "Frame filter: none, edges")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	frames, err := images.Load(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("%s: no frames", args[0])
	}

	ramp, err := ascii.ParseRamp(cfg.Render.Ramp)
	if err != nil {
		return err
	}
	name := cfg.Render.Filter
	if flagRenderFilter != "" {
		name = flagRenderFilter
	}
	flt, err := filter.ByName(name)
	if err != nil {
		return err
	}

	w, h := cfg.Render.Width, cfg.Render.Height
	if flagRenderWidth > 0 {
		w = flagRenderWidth
	}
	if flagRenderHeight > 0 {
		h = flagRenderHeight
	}
	res := cfg.Bounds().Clamp(w, h)

	screen := ascii.NewRasterizer(ramp).Rasterize(flt.Apply(frames[0]), res.Width, res.Height)
	_, err = fmt.Fprint(cmd.OutOrStdout(), screen.String())
	return err
}

