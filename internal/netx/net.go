// Package netx holds network address helpers.
package netx

import (
	"net"
	"strings"
)

// HostOnly strips the port from a "host:port" address. IPv6 brackets are
// removed. Anything that does not parse is returned as is.
func HostOnly(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return strings.Trim(addr, "[]")
	}
	return host
}

// ClientIP returns the host part of a peer address, or "" for nil.
func ClientIP(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	return HostOnly(addr.String())
}
