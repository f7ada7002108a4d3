// Package middleware holds the HTTP middleware chain shared by all routes.
package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientKey identifies the caller: the first X-Forwarded-For entry, else the
// remote IP. There are no accounts, so this is also the audit actor.
func ClientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
