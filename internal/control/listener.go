package control

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/asciicam/internal/core"
)

// DefaultAddress is the well-known control port.
const DefaultAddress = ":9000"

// maxDatagram bounds a single read; longer payloads are truncated by the
// kernel and then fail to parse.
const maxDatagram = 512

// Stats is a snapshot of listener counters.
type Stats struct {
	Received   uint64 // Datagrams read
	Applied    uint64 // Messages committed to the state
	Dropped    uint64 // Malformed messages ignored
	ReadErrors uint64 // Per-datagram transport errors
}

// Listener receives control datagrams and commits them to a core.State.
type Listener struct {
	conn   net.PacketConn
	state  *core.State
	logger *log.Logger

	received   atomic.Uint64
	applied    atomic.Uint64
	dropped    atomic.Uint64
	readErrors atomic.Uint64
}

// Listen binds a UDP socket on address and returns a Listener for state.
func Listen(address string, state *core.State, logger *log.Logger) (*Listener, error) {
	conn, err := net.ListenPacket("udp", address)
	if err != nil {
		return nil, fmt.Errorf("control: cannot listen on %s: %w", address, err)
	}
	return NewListener(conn, state, logger), nil
}

// NewListener wraps an already bound packet connection.
func NewListener(conn net.PacketConn, state *core.State, logger *log.Logger) *Listener {
	if logger == nil {
		logger = log.Default()
	}
	return &Listener{
		conn:   conn,
		state:  state,
		logger: logger.WithPrefix("control"),
	}
}

// Addr returns the bound local address.
func (l *Listener) Addr() net.Addr {
	return l.conn.LocalAddr()
}

// Serve runs the receive loop until ctx is cancelled or the socket is closed.
// A failed read only aborts that receive cycle; the loop re-arms.
// Serve closes the socket before returning.
func (l *Listener) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		l.conn.Close()
	})
	defer stop()
	defer l.conn.Close()

	l.logger.Info("listening for resolution updates", "address", l.conn.LocalAddr().String())

	buf := make([]byte, maxDatagram)
	for {
		n, from, err := l.conn.ReadFrom(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				l.logger.Debug("listener stopped")
				return nil
			}
			l.readErrors.Add(1)
			l.logger.Warn("receive failed", "error", err)
			continue
		}

		l.received.Add(1)
		l.handle(buf[:n], from)
	}
}

// handle parses one payload and commits it. Malformed payloads are dropped.
func (l *Listener) handle(payload []byte, from net.Addr) {
	width, height, ok := ParseMessage(payload)
	if !ok {
		l.dropped.Add(1)
		l.logger.Debug("dropping malformed message", "from", addrString(from), "bytes", len(payload))
		return
	}

	committed := l.state.Write(width, height)
	l.applied.Add(1)
	l.logger.Info("updated resolution",
		"resolution", committed.String(),
		"requested", core.Resolution{Width: width, Height: height}.String(),
		"from", addrString(from),
	)
}

// Stats returns a snapshot of the listener counters.
func (l *Listener) Stats() Stats {
	return Stats{
		Received:   l.received.Load(),
		Applied:    l.applied.Load(),
		Dropped:    l.dropped.Load(),
		ReadErrors: l.readErrors.Load(),
	}
}

// Close closes the socket, ending Serve.
func (l *Listener) Close() error {
	return l.conn.Close()
}

func addrString(a net.Addr) string {
	if a == nil {
		return ""
	}
	return a.String()
}
