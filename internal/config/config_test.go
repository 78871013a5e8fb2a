package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("ROYALE_API_TOKEN", "token")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_RequiresRoyaleAPIToken(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ROYALE_API_TOKEN", "  ")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when ROYALE_API_TOKEN is empty")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageDriverPostgres {
		t.Fatalf("unexpected StorageDriver: %q", cfg.StorageDriver)
	}
	if cfg.RoyaleAPIBaseURL != "https://api.clashroyale.com/v1" {
		t.Fatalf("unexpected RoyaleAPIBaseURL: %q", cfg.RoyaleAPIBaseURL)
	}
	if cfg.RoyaleAPITimeout != 10*time.Second {
		t.Fatalf("unexpected RoyaleAPITimeout: %s", cfg.RoyaleAPITimeout)
	}
	if cfg.SyncRosterWorkers != 4 {
		t.Fatalf("unexpected SyncRosterWorkers: %d", cfg.SyncRosterWorkers)
	}
	if cfg.ServiceName != "royale-stats-api" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.WriteTimeout != 60*time.Second {
		t.Fatalf("unexpected WriteTimeout: %s", cfg.WriteTimeout)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar, uptrace-dsn='https://token@api.uptrace.dev/1'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_StorageDriver(t *testing.T) {
	t.Run("invalid driver", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("STORAGE_DRIVER", "mongo")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid STORAGE_DRIVER")
		}
	})

	t.Run("sqlite gets a file default", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("STORAGE_DRIVER", "SQLite")
		t.Setenv("DB_URL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StorageDriver != StorageDriverSQLite {
			t.Fatalf("unexpected StorageDriver: %q", cfg.StorageDriver)
		}
		if cfg.DBURL == "" {
			t.Fatalf("expected default sqlite DB_URL")
		}
	})

	t.Run("memory needs no db url", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("STORAGE_DRIVER", "memory")
		t.Setenv("DB_URL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DBURL != "" {
			t.Fatalf("expected empty DB_URL, got %q", cfg.DBURL)
		}
	})
}

func TestLoad_RoyaleAPICircuitValidation(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ROYALE_API_CIRCUIT_FAILURE_COUNT", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for ROYALE_API_CIRCUIT_FAILURE_COUNT=0")
	}
}

func TestLoad_SyncRosterWorkersValidation(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SYNC_ROSTER_WORKERS", "abc")
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error for SYNC_ROSTER_WORKERS")
	}

	t.Setenv("SYNC_ROSTER_WORKERS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for SYNC_ROSTER_WORKERS=0")
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("unexpected PprofAddr: %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_SERVICE_NAME", "royale-stats-worker")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "royale-stats-worker" {
		t.Fatalf("unexpected PyroscopeAppName: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com , ,https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_TTL", "2m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CacheEnabled {
		t.Fatalf("expected CacheEnabled=false")
	}
	if cfg.CacheTTL != 2*time.Minute {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}

	t.Setenv("CACHE_TTL", "0s")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for CACHE_TTL=0s")
	}
}

func TestLoad_DotEnvFillsUnsetVariables(t *testing.T) {
	setBaseEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	content := "SYNC_ROSTER_WORKERS=9\nAPP_SERVICE_NAME=from-dotenv\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("ENV_FILE", path)
	t.Setenv("APP_SERVICE_NAME", "from-env")
	// Registers cleanup for the variable the file sets.
	t.Setenv("SYNC_ROSTER_WORKERS", "")
	os.Unsetenv("SYNC_ROSTER_WORKERS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SyncRosterWorkers != 9 {
		t.Fatalf("expected SYNC_ROSTER_WORKERS from file, got %d", cfg.SyncRosterWorkers)
	}
	if cfg.ServiceName != "from-env" {
		t.Fatalf("expected process env to win, got %q", cfg.ServiceName)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "debug",
		"WARNING": "warn",
		"error":   "error",
		"":        "info",
		"verbose": "info",
	}
	for in, want := range tests {
		if got := ParseLogLevel(in).String(); got != want {
			t.Fatalf("ParseLogLevel(%q)=%s want=%s", in, got, want)
		}
	}
}
