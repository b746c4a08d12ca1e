package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/asciicam/internal/capture"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List all frame sources",
	Long:  `Shows a list of all frame sources that asciicam can read from.`,
	Run:   runSources,
}

func runSources(cmd *cobra.Command, args []string) {
	sources := capture.List()
	out := cmd.OutOrStdout()

	if len(sources) == 0 {
		fmt.Fprintln(out, "No sources available.")
		return
	}

	fmt.Fprintln(out, "Available sources:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxKindLen := 4 // "Kind" header
	for _, s := range sources {
		if len(s.Kind) > maxKindLen {
			maxKindLen = len(s.Kind)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %s\n", maxKindLen, "Kind", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxKindLen, "----", "-----------")

	for _, s := range sources {
		fmt.Fprintf(out, "  %-*s  %s\n", maxKindLen, s.Kind, s.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'asciicam view --source <kind>' to use one.")
}
