package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/asciicam/internal/control"
)

var flagSendAddr string

var sendCmd = &cobra.Command{
	Use:   "send [--] <width> <height>",
	Short: "Change the resolution of a running view",
	Long: `Send a "<width>, <height>" datagram to a running asciicam view.
The receiver clamps the values to its bounds; nothing is sent back.
Put "--" before negative values so they are not read as flags.

Examples:
  asciicam send 120 60
  asciicam send 40 20 --to 192.168.1.20:9000
  asciicam send -- -5 10`,
	Args: cobra.ExactArgs(2),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&flagSendAddr, "to", "127.0.0.1:9000", "Control address of the view")
}

func runSend(cmd *cobra.Command, args []string) error {
	width, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("width: %w", err)
	}
	height, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("height: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
	defer cancel()

	if err := control.Send(ctx, flagSendAddr, width, height); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "sent %q to %s\n", control.FormatMessage(width, height), flagSendAddr)
	return nil
}
