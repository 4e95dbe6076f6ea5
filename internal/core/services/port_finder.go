package services

import (
	"fmt"
	"net"
)

// FindAvailablePort probes localhost ports from startPort to endPort
// inclusive and returns the first one that accepts a listener. Used when
// HTTP mode is requested without an explicit port.
func FindAvailablePort(startPort, endPort int) (int, error) {
	for port := startPort; port <= endPort; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err != nil {
			continue
		}
		listener.Close()
		return port, nil
	}
	return 0, fmt.Errorf("no available port in range %d-%d", startPort, endPort)
}
