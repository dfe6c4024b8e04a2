package utils

import (
	"fmt"
	"net"
	"time"
)

// PingServer checks that a TCP listener is accepting on host:port. Used by
// the container healthcheck before it queries the database.
func PingServer(host, port string, timeout time.Duration) error {
	address := net.JoinHostPort(host, port)

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	return nil
}
