package server

import (
	"net"
	"strconv"
	"strings"

	"github.com/samber/oops"
)

// ParsePort reads the leading decimal digits of arg. Input without leading
// digits yields 0, which lets the OS pick a free port.
func ParsePort(arg string) int {
	digits := strings.TrimSpace(arg)
	end := 0
	for end < len(digits) && digits[end] >= '0' && digits[end] <= '9' {
		end++
	}

	port, err := strconv.Atoi(digits[:end])
	if err != nil {
		return 0
	}
	return port
}

// Listen binds a TCP listener on host:port. An empty host binds every
// interface.
func Listen(host string, port int) (net.Listener, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, oops.
			Code("LISTEN_FAILED").
			With("addr", addr).
			Hint("Pick another port or stop the process using this one").
			Wrapf(err, "binding preview listener")
	}

	return ln, nil
}

// BoundPort returns the TCP port ln is listening on.
func BoundPort(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}
