package utils

import (
	"net/url"
	"strings"
)

// NormalizeMediaURL cleans up a stored media URL before it is handed to
// clients. Stored values arrive in several broken shapes: percent-escaped,
// padded with whitespace, prefixed with a stray slash, or with a collapsed
// scheme separator ("https:/cdn..."). Absolute URLs are returned as-is
// after repair; relative paths are resolved against baseURL.
func NormalizeMediaURL(baseURL, raw string) string {
	if raw == "" {
		return ""
	}

	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "/")

	if strings.HasPrefix(raw, "https:/") && !strings.HasPrefix(raw, "https://") {
		raw = strings.Replace(raw, "https:/", "https://", 1)
	} else if strings.HasPrefix(raw, "http:/") && !strings.HasPrefix(raw, "http://") {
		raw = strings.Replace(raw, "http:/", "http://", 1)
	}

	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}

	if baseURL != "" {
		return strings.TrimSuffix(baseURL, "/") + "/" + raw
	}
	return raw
}
