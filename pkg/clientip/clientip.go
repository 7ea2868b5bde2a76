package clientip

import (
	"net"
	"net/http"
	"strings"
)

// GetIP returns the client address of r. Proxy headers are checked in order
// X-Forwarded-For (first valid entry), X-Real-IP, then RemoteAddr. Invalid
// values are skipped; "" means nothing usable was found.
func GetIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for ip := range strings.SplitSeq(forwarded, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}

	if parsed := parseIP(r.Header.Get("X-Real-IP")); parsed != "" {
		return parsed
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
