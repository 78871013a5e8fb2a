package app

import (
	"net/url"
	"path/filepath"
	"strings"
)

// dbNameFromURL extracts a database name for span attributes from a URL, a
// key/value DSN or a sqlite path.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		switch {
		case u.Opaque != "":
			return filepath.Base(u.Opaque)
		case strings.Trim(u.Path, "/") != "":
			return strings.Trim(u.Path, "/")
		}
	}

	if strings.Contains(raw, "=") && strings.Contains(raw, " ") {
		for _, field := range strings.Fields(raw) {
			if name, ok := strings.CutPrefix(field, "dbname="); ok {
				return strings.Trim(name, `"'`)
			}
		}
		return ""
	}

	path, _, _ := strings.Cut(raw, "?")
	return filepath.Base(strings.TrimPrefix(path, "file:"))
}
