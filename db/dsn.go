package db

import (
	"fmt"
	"net/url"
	"strings"
)

// PostgresDSN adds lib/pq's disable_prepared_binary_result=yes unless the URL
// already sets it. Key/value DSNs are returned untouched.
func PostgresDSN(raw string, disableBinary bool) string {
	if !disableBinary {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return raw
	}
	q := u.Query()
	if q.Has("disable_prepared_binary_result") {
		return raw
	}
	q.Set("disable_prepared_binary_result", "yes")
	u.RawQuery = q.Encode()
	return u.String()
}

// SQLiteDSN turns on foreign key enforcement, which ON DELETE CASCADE on the
// deck and collection tables depends on.
func SQLiteDSN(raw string) string {
	path, query, _ := strings.Cut(raw, "?")
	q, err := url.ParseQuery(query)
	if err != nil {
		return raw
	}
	if q.Has("_foreign_keys") || q.Has("_fk") {
		return raw
	}
	q.Set("_foreign_keys", "on")
	return path + "?" + q.Encode()
}

// MigrateURL converts a storage DSN into the database URL golang-migrate
// expects for driver.
func MigrateURL(driver, raw string, disableBinary bool) (string, error) {
	switch driver {
	case "postgres":
		return PostgresDSN(raw, disableBinary), nil
	case "sqlite":
		path := strings.TrimPrefix(raw, "sqlite3://")
		path = strings.TrimPrefix(path, "file:")
		return "sqlite3://" + SQLiteDSN(path), nil
	default:
		return "", fmt.Errorf("unsupported storage driver %q for migrations", driver)
	}
}
