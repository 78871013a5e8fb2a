package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/riskibarqy/royale-stats/db"
	"github.com/riskibarqy/royale-stats/internal/config"
	"github.com/riskibarqy/royale-stats/internal/platform/logging"
	"github.com/urfave/cli/v2"
)

func main() {
	logger := logging.NewJSONTo(os.Stderr, config.ParseLogLevel(os.Getenv("APP_LOG_LEVEL"))).With("service", "royale-migrate")
	defer func() { _ = logger.Sync() }()

	if err := newApp(&migrator{logger: logger}).Run(os.Args); err != nil {
		logger.Error("migration failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

type migrator struct {
	logger *logging.Logger
	m      *migrate.Migrate
	source string
}

func newApp(mg *migrator) *cli.App {
	return &cli.App{
		Name:  "royale-migrate",
		Usage: "Apply or roll back the royale-stats schema",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "driver", Value: config.StorageDriverPostgres, EnvVars: []string{"STORAGE_DRIVER"}, Usage: "postgres or sqlite"},
			&cli.StringFlag{Name: "db-url", EnvVars: []string{"DB_URL"}, Required: true},
			&cli.StringFlag{Name: "dir", EnvVars: []string{"MIGRATIONS_DIR"}, Usage: "read migrations from disk instead of the embedded set"},
			&cli.BoolFlag{Name: "disable-prepared-binary", Value: true, EnvVars: []string{"DB_DISABLE_PREPARED_BINARY_RESULT"}},
		},
		Before: mg.open,
		After:  mg.close,
		Commands: []*cli.Command{
			{Name: "up", Usage: "apply all pending migrations", Action: mg.up},
			{Name: "down", Usage: "roll back N migrations (default 1)", ArgsUsage: "[N]", Action: mg.down},
			{Name: "version", Usage: "print the current version", Action: mg.version},
			{Name: "force", Usage: "set the version without running migrations", ArgsUsage: "<V>", Action: mg.force},
			{Name: "goto", Aliases: []string{"migrate"}, Usage: "migrate up or down to version V", ArgsUsage: "<V>", Action: mg.gotoVersion},
		},
	}
}

func (mg *migrator) open(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return nil
	}

	driver := strings.ToLower(strings.TrimSpace(c.String("driver")))
	dbURL, err := db.MigrateURL(driver, strings.TrimSpace(c.String("db-url")), c.Bool("disable-prepared-binary"))
	if err != nil {
		return err
	}

	if dir := strings.TrimSpace(c.String("dir")); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolve migrations dir: %w", err)
		}
		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			return fmt.Errorf("migrations dir %q is not a directory", dir)
		}
		mg.source = "file://" + filepath.ToSlash(abs)
		mg.m, err = migrate.New(mg.source, dbURL)
		return wrapCreate(err)
	}

	fsys, err := db.Migrations(driver)
	if err != nil {
		return err
	}
	src, err := iofs.New(fsys, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	mg.source = "embedded:" + driver
	mg.m, err = migrate.NewWithSourceInstance("iofs", src, dbURL)
	return wrapCreate(err)
}

func wrapCreate(err error) error {
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	return nil
}

func (mg *migrator) close(*cli.Context) error {
	if mg.m == nil {
		return nil
	}
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

// applied treats "nothing to do" as success.
func (mg *migrator) applied(err error, msg string, args ...any) error {
	if errors.Is(err, migrate.ErrNoChange) {
		mg.logger.Info("no migration changes", "source", mg.source)
		return nil
	}
	if err != nil {
		return err
	}
	mg.logger.Info(msg, append(args, "source", mg.source)...)
	return nil
}

func (mg *migrator) up(*cli.Context) error {
	return mg.applied(mg.m.Up(), "migrations applied")
}

func (mg *migrator) down(c *cli.Context) error {
	steps, err := parseSteps(c.Args().Slice())
	if err != nil {
		return err
	}
	return mg.applied(mg.m.Steps(-steps), "migrations rolled back", "steps", steps)
}

func (mg *migrator) version(c *cli.Context) error {
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		_, err = fmt.Fprintln(c.App.Writer, "version: none\ndirty: false")
		return err
	}
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}
	_, err = fmt.Fprintf(c.App.Writer, "version: %d\ndirty: %t\n", v, dirty)
	return err
}

func (mg *migrator) force(c *cli.Context) error {
	v, err := parseVersion(c.Args().First())
	if err != nil {
		return err
	}
	if err := mg.m.Force(v); err != nil {
		return fmt.Errorf("force version %d: %w", v, err)
	}
	mg.logger.Info("version forced", "version", v)
	return nil
}

func (mg *migrator) gotoVersion(c *cli.Context) error {
	v, err := parseVersion(c.Args().First())
	if err != nil {
		return err
	}
	return mg.applied(mg.m.Migrate(uint(v)), "migrated", "version", v)
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}
	return steps, nil
}

// parseVersion accepts the non-negative int both Force and Migrate need.
func parseVersion(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("a version argument is required")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("version must be >= 0")
	}
	return v, nil
}
