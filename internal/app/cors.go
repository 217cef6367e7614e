package app

import (
	"net/url"
	"strings"
)

// originAllowed reports whether the request origin matches one of the
// configured patterns. Patterns compare against the origin's host[:port]
// and support a leading "*." wildcard for subdomains and a trailing ":*"
// wildcard for any port.
func originAllowed(patterns []string, origin string) bool {
	host := origin
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		host = u.Host
	}
	host = strings.ToLower(host)

	for _, pattern := range patterns {
		pattern = strings.ToLower(strings.TrimSpace(pattern))
		switch {
		case pattern == "":
			continue
		case pattern == host:
			return true
		case strings.HasPrefix(pattern, "*."):
			if strings.HasSuffix(host, pattern[1:]) {
				return true
			}
		case strings.HasSuffix(pattern, ":*"):
			if strings.HasPrefix(host, strings.TrimSuffix(pattern, "*")) {
				return true
			}
		}
	}
	return false
}
