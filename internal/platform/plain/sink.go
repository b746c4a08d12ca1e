// Package plain writes rendered frames straight to a terminal stream using
// cursor-home redraws, for pipes and terminals without Bubble Tea.
package plain

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/asciicam/internal/core"
	"github.com/vovakirdan/asciicam/internal/pipeline"
)

// Sink redraws each frame over the previous one.
type Sink struct {
	mu   sync.Mutex
	w    io.Writer
	last core.Resolution
}

// New returns a Sink writing to w.
func New(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Show implements pipeline.Sink. The whole screen is cleared when the
// resolution changes so a smaller frame leaves no stale glyphs behind.
func (s *Sink) Show(f pipeline.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sb strings.Builder
	if f.Resolution != s.last {
		sb.WriteString(ansi.EraseEntireScreen)
		s.last = f.Resolution
	}
	sb.WriteString(ansi.CursorHomePosition)
	sb.WriteString(f.Text())
	sb.WriteString(ansi.EraseScreenBelow)

	if _, err := io.WriteString(s.w, sb.String()); err != nil {
		return fmt.Errorf("plain: write frame: %w", err)
	}
	return nil
}

// SourceStopped implements pipeline.StopNotifier.
func (s *Sink) SourceStopped(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	//nolint:errcheck // Best-effort notice, the frame stream is already over
	fmt.Fprintf(s.w, "\nsource stopped: %v\n", err)
}
