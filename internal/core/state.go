package core

import "sync/atomic"

// State is the resolution shared between the control channel (writer) and
// the frame pipeline (reader).
//
// The pair is stored as an immutable Resolution behind a single atomic
// pointer, so a reader always sees both fields from the same Write and
// neither side ever waits on the other.
type State struct {
	bounds Bounds
	cur    atomic.Pointer[Resolution]
}

// NewState creates a State holding initial, clamped into b.
func NewState(initial Resolution, b Bounds) *State {
	s := &State{bounds: b}
	r := b.Clamp(initial.Width, initial.Height)
	s.cur.Store(&r)
	return s
}

// Read returns the last committed resolution.
func (s *State) Read() Resolution {
	return *s.cur.Load()
}

// Write clamps width and height into bounds and commits them as one pair.
// It returns the committed value.
func (s *State) Write(width, height int) Resolution {
	r := s.bounds.Clamp(width, height)
	s.cur.Store(&r)
	return r
}

// Bounds returns the clamp limits applied by Write.
func (s *State) Bounds() Bounds {
	return s.bounds
}
