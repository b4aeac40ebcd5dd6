package middleware

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"
)

// sensitiveHeaders is the set of header names (lowercase) that must be
// redacted before logging.
var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// RedactHeaders converts request headers into slog attributes for the debug
// header log, sorted by name. Headers in sensitiveHeaders are replaced with
// "[REDACTED]"; multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		if sensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, "[REDACTED]"))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(headers[key], ",")))
	}
	return attrs
}
