// asciicam renders a live camera feed as ASCII art in the terminal.
//
// Usage:
//
//	asciicam view                 - Show the live feed
//	asciicam render <image>       - Print one image as ASCII art
//	asciicam send <width> <height> - Change the resolution of a running view
//	asciicam sources              - List available frame sources
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.asciicam/config.yaml)
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import sources to register them
	_ "github.com/vovakirdan/asciicam/internal/capture/camera"
	_ "github.com/vovakirdan/asciicam/internal/capture/images"
	_ "github.com/vovakirdan/asciicam/internal/capture/pattern"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asciicam",
	Short: "asciicam - watch your camera as ASCII art",
	Long: `asciicam captures frames from a camera (or another frame source) and
renders them as ASCII art in the terminal. The output resolution can be
changed while it runs by sending "<width>, <height>" over UDP.

Available commands:
  view     - Show the live feed
  render   - Print a single image as ASCII art
  send     - Send a resolution change to a running view
  sources  - List frame sources

Examples:
  asciicam view
  asciicam view --source pattern --tint green
  asciicam send 120 60
  echo -n "120, 60" | nc -u -w0 127.0.0.1 9000`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(sourcesCmd)
}
