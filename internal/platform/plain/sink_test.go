package plain

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/asciicam/internal/core"
	"github.com/vovakirdan/asciicam/internal/pipeline"
)

// Expected terminal sequences.
const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	clearBelow  = "\x1b[J"
)

func frame(w, h int, r rune) pipeline.Frame {
	s := core.NewScreen(w, h)
	s.Fill(r)
	return pipeline.Frame{Screen: s, Resolution: core.Resolution{Width: w, Height: h}}
}

func TestShowRedrawsFromHome(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)

	if err := s.Show(frame(3, 2, '#')); err != nil {
		t.Fatalf("Show() failed: %v", err)
	}
	expected := clearScreen + cursorHome + "###\n###\n" + clearBelow
	if buf.String() != expected {
		t.Errorf("first frame wrote %q, expected %q", buf.String(), expected)
	}

	buf.Reset()
	if err := s.Show(frame(3, 2, '.')); err != nil {
		t.Fatalf("Show() failed: %v", err)
	}
	if strings.Contains(buf.String(), clearScreen) {
		t.Error("same resolution should not clear the screen")
	}
	if !strings.HasPrefix(buf.String(), cursorHome+"...\n") {
		t.Errorf("second frame wrote %q", buf.String())
	}

	buf.Reset()
	s.Show(frame(2, 1, 'o'))
	if !strings.HasPrefix(buf.String(), clearScreen) {
		t.Error("resolution change should clear the screen")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestShowReportsWriteErrors(t *testing.T) {
	if err := New(failingWriter{}).Show(frame(2, 2, 'x')); err == nil {
		t.Error("Show() should report write errors")
	}
}

func TestSourceStopped(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).SourceStopped(errors.New("unplugged"))
	if !strings.Contains(buf.String(), "source stopped: unplugged") {
		t.Errorf("SourceStopped wrote %q", buf.String())
	}
}
