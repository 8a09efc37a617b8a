package api

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/wearlytic/catalog/internal/logger"
)

// CandidatePorts returns the bounded list of ports the server may bind:
// base, base+1, ... up to attempts entries.
func CandidatePorts(base, attempts int) []int {
	if attempts < 1 {
		attempts = 1
	}
	ports := make([]int, 0, attempts)
	for i := 0; i < attempts; i++ {
		ports = append(ports, base+i)
	}
	return ports
}

// ListenWithFallback binds the first available port from the candidate
// list and returns the listener and the bound port. When every candidate
// is taken it returns a definitive error; there is no ambient retry state.
func ListenWithFallback(host string, ports []int, log logger.Logger) (net.Listener, int, error) {
	if len(ports) == 0 {
		return nil, 0, errors.New("no candidate ports")
	}

	var lastErr error
	for _, port := range ports {
		addr := net.JoinHostPort(host, strconv.Itoa(port))
		listener, err := net.Listen("tcp", addr)
		if err == nil {
			bound := port
			if tcpAddr, ok := listener.Addr().(*net.TCPAddr); ok {
				bound = tcpAddr.Port
			}
			return listener, bound, nil
		}
		lastErr = err
		log.Warn("Port unavailable, trying next candidate",
			logger.Int("port", port),
			logger.Error(err),
		)
	}

	return nil, 0, fmt.Errorf("all %d candidate ports in use: %w", len(ports), lastErr)
}
