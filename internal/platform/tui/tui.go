// Package tui shows the live ASCII feed in a Bubble Tea program.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/asciicam/internal/pipeline"
)

// StartFunc launches frame production into sink. It must return when ctx is done.
type StartFunc func(ctx context.Context, sink pipeline.Sink)

// Run shows the live view until the user quits or ctx is cancelled.
// start runs in its own goroutine and is cancelled when the view exits.
func Run(ctx context.Context, opts Options, start StartFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	go start(ctx, NewSink(p))

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
