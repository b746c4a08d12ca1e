package control

import (
	"context"
	"fmt"
	"net"
)

// Send transmits one resolution update to address. Delivery is not confirmed.
func Send(ctx context.Context, address string, width, height int) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", address)
	if err != nil {
		return fmt.Errorf("control: cannot reach %s: %w", address, err)
	}
	defer conn.Close()

	if _, err := conn.Write(FormatMessage(width, height)); err != nil {
		return fmt.Errorf("control: cannot send to %s: %w", address, err)
	}
	return nil
}
