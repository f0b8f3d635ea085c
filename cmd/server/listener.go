package server

import (
	"crush-hub/internal/logger"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

type ListenAddr struct {
	Network string
	Address string
}

/**
 * Test if the system supports Unix socket network type
 * @returns {bool} Returns true if Unix socket is supported, false otherwise
 * @description
 * - Always true outside windows
 * - On windows, creates and removes a temporary socket to probe support
 */
func IsUnixSocketSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	testSocketPath := filepath.Join(os.TempDir(), "crush_hub_probe.sock")
	os.Remove(testSocketPath)

	listener, err := net.Listen("unix", testSocketPath)
	if err != nil {
		return false
	}
	listener.Close()
	os.Remove(testSocketPath)
	return true
}

/**
 * Parse a comma separated address list
 * @param {string} list - e.g. ":3000,unix:/run/crush-hub.sock"
 * @returns {[]ListenAddr} parsed addresses, empty entries skipped
 * @example
 * ParseListenAddrs(":3000")  // [{tcp :3000}]
 * ParseListenAddrs("unix:/tmp/hub.sock")  // [{unix /tmp/hub.sock}]
 */
func ParseListenAddrs(list string) []ListenAddr {
	var addrs []ListenAddr
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if path, ok := strings.CutPrefix(part, "unix:"); ok {
			addrs = append(addrs, ListenAddr{Network: "unix", Address: path})
			continue
		}
		addrs = append(addrs, ListenAddr{Network: "tcp", Address: part})
	}
	return addrs
}

/**
 * Create TCP and Unix socket listeners
 * @param {[]ListenAddr} addrs - Listener Address
 * @returns {[]net.Listener} Array of created listeners
 * @returns {error} Last listener creation error, if any
 * @description
 * - Removes stale socket files before binding unix addresses
 * - Skips unix addresses when the platform cannot bind them
 * - Keeps going after a failure so the other addresses still serve
 */
func CreateListeners(addrs []ListenAddr) ([]net.Listener, error) {
	var listeners []net.Listener

	var lastErr error
	for _, addr := range addrs {
		if addr.Network == "unix" {
			if !IsUnixSocketSupported() {
				logger.Warnf("Unix socket is not supported, skip %s", addr.Address)
				continue
			}
			if err := os.Remove(addr.Address); err != nil && !os.IsNotExist(err) {
				logger.Errorf("Failed to remove existing socket file: %v", err)
				continue
			}
		}
		l, err := net.Listen(addr.Network, addr.Address)
		if err != nil {
			logger.Errorf("Failed to create listener on %s://%s: %v", addr.Network, addr.Address, err)
			lastErr = err
			continue
		}
		listeners = append(listeners, l)
	}
	return listeners, lastErr
}
