package log

import (
	"log/slog"
	"net/url"
)

// URL returns an attribute holding u with its password redacted.
func URL(name string, u *url.URL) slog.Attr {
	if u == nil {
		return slog.String(name, "")
	}

	return slog.String(name, u.Redacted())
}
