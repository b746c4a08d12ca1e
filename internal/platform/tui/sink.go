package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/asciicam/internal/pipeline"
)

// FrameMsg carries a rendered frame into the Bubble Tea loop.
type FrameMsg pipeline.Frame

// SourceStoppedMsg reports that the frame source ended.
type SourceStoppedMsg struct {
	Err error
}

// Sink forwards frames to a running Bubble Tea program.
type Sink struct {
	program *tea.Program
}

// NewSink returns a Sink delivering to p.
func NewSink(p *tea.Program) *Sink {
	return &Sink{program: p}
}

// Show implements pipeline.Sink. It blocks until the program accepts the
// frame or exits; meanwhile newer frames are dropped upstream.
func (s *Sink) Show(f pipeline.Frame) error {
	s.program.Send(FrameMsg(f))
	return nil
}

// SourceStopped implements pipeline.StopNotifier.
func (s *Sink) SourceStopped(err error) {
	s.program.Send(SourceStoppedMsg{Err: err})
}
