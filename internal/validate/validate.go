package validate

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	reFilter = regexp.MustCompile(`^[A-Za-z0-9 &_'\-]{1,40}$`)
	reID     = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// ProductURL checks that s is an absolute http(s) URL with a host. Trims and
// caps the length to keep abuse out of the log and the sink.
func ProductURL(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 2048 {
		return "", false
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	return s, true
}

// Filter validates an optional category filter: letters, digits and a few
// separators, max 40 chars.
func Filter(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, reFilter.MatchString(s)
}

// Limit parses a result limit, clamped to [1,100] with a default of 10.
func Limit(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 10
	}
	if n > 100 {
		return 100
	}
	return n
}

// SessionID validates an opaque session token shape.
func SessionID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s == "" || reID.MatchString(s)
}
