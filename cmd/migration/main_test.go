package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/royale-stats/internal/platform/logging"
)

func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(&migrator{logger: logging.NewNop()})
	app.Writer = &out
	full := append([]string{"royale-migrate", "--driver", "sqlite", "--db-url", "file:" + dbPath}, args...)
	err := app.Run(full)
	return out.String(), err
}

func TestMigrate_SQLiteUpVersionDown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "royale.db")

	if out, err := run(t, dbPath, "version"); err != nil || !strings.Contains(out, "version: none") {
		t.Fatalf("version before up: out=%q err=%v", out, err)
	}
	if _, err := run(t, dbPath, "up"); err != nil {
		t.Fatalf("up: %v", err)
	}
	if _, err := run(t, dbPath, "up"); err != nil {
		t.Fatalf("second up should be a no-op: %v", err)
	}
	if out, err := run(t, dbPath, "version"); err != nil || !strings.Contains(out, "version: 1\ndirty: false") {
		t.Fatalf("version after up: out=%q err=%v", out, err)
	}
	if _, err := run(t, dbPath, "down"); err != nil {
		t.Fatalf("down: %v", err)
	}
	if out, err := run(t, dbPath, "version"); err != nil || !strings.Contains(out, "version: none") {
		t.Fatalf("version after down: out=%q err=%v", out, err)
	}
}

func TestMigrate_RejectsUnknownDriver(t *testing.T) {
	app := newApp(&migrator{logger: logging.NewNop()})
	err := app.Run([]string{"royale-migrate", "--driver", "mysql", "--db-url", "x", "up"})
	if err == nil || !strings.Contains(err.Error(), "unsupported storage driver") {
		t.Fatalf("expected unsupported driver error, got %v", err)
	}
}

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("parseSteps(nil)=%d,%v", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("parseSteps(3)=%d,%v", got, err)
	}
	for _, bad := range []string{"0", "-1", "x"} {
		if _, err := parseSteps([]string{bad}); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseVersion(t *testing.T) {
	if got, err := parseVersion("1"); err != nil || got != 1 {
		t.Fatalf("parseVersion(1)=%d,%v", got, err)
	}
	for _, bad := range []string{"", "-1", "abc"} {
		if _, err := parseVersion(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
