package pipeline

import (
	"image"
	"sync"
	"time"
)

// pending is a captured frame waiting to be rendered.
type pending struct {
	img        image.Image
	capturedAt time.Time
}

// mailbox is a single-slot buffer between the frame source and the render
// loop. A new frame overwrites an unconsumed one, so at most one frame ever
// waits and the render loop always sees the newest.
type mailbox struct {
	mu     sync.Mutex
	cond   *sync.Cond
	slot   *pending // nil = consumed
	closed bool
	drops  uint64
}

func newMailbox() *mailbox {
	m := &mailbox{}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// put stores img, replacing any unconsumed frame. It never blocks.
// It reports whether a previous frame was dropped.
func (m *mailbox) put(img image.Image, at time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false
	}

	dropped := m.slot != nil
	if dropped {
		m.drops++
	}
	m.slot = &pending{img: img, capturedAt: at}
	m.cond.Signal()
	return dropped
}

// take blocks until a frame is available or the mailbox is closed.
// It returns false once closed; a frame still waiting at close is discarded.
func (m *mailbox) take() (pending, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for m.slot == nil && !m.closed {
		m.cond.Wait()
	}
	if m.closed {
		return pending{}, false
	}

	p := *m.slot
	m.slot = nil
	return p, true
}

// close wakes the consumer and rejects further frames. Idempotent.
func (m *mailbox) close() {
	m.mu.Lock()
	m.closed = true
	m.slot = nil
	m.cond.Broadcast()
	m.mu.Unlock()
}

// dropped returns how many frames were overwritten before being rendered.
func (m *mailbox) dropped() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.drops
}
