// Package control implements the UDP channel that lets a remote peer change
// the render resolution while frames are being drawn.
//
// Wire format: one datagram is one UTF-8 message "<width>, <height>".
// Nothing is ever sent back.
package control

import (
	"strconv"
	"strings"
)

// Separator is the literal between width and height in a message.
const Separator = ", "

// ParseMessage extracts width and height from a control payload.
// It reports ok=false for anything other than exactly two integer segments.
// One trailing "\n" or "\r\n" is tolerated; values are not range checked.
func ParseMessage(payload []byte) (width, height int, ok bool) {
	msg := string(payload)
	if trimmed, found := strings.CutSuffix(msg, "\r\n"); found {
		msg = trimmed
	} else {
		msg = strings.TrimSuffix(msg, "\n")
	}

	parts := strings.Split(msg, Separator)
	if len(parts) != 2 {
		return 0, 0, false
	}

	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}

// FormatMessage renders width and height in wire format.
func FormatMessage(width, height int) []byte {
	return []byte(strconv.Itoa(width) + Separator + strconv.Itoa(height))
}
