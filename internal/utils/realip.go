package utils

import (
	"net"
	"net/http"
	"strings"
)

const forwardedForHeader = "X-Forwarded-For"

// ClientIP extracts the source identifier used as the lockout key.
//
// The first comma-separated entry of the X-Forwarded-For header takes
// precedence over the direct peer address, so deployments behind a proxy
// key their lockout state on the original client. Without the header, the
// host part of RemoteAddr is used.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get(forwardedForHeader); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port, e.g. in tests
		return r.RemoteAddr
	}
	return host
}
