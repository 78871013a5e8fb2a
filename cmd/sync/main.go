package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/royale-stats/internal/app"
	"github.com/riskibarqy/royale-stats/internal/config"
	"github.com/riskibarqy/royale-stats/internal/observability"
	"github.com/riskibarqy/royale-stats/internal/platform/logging"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var cliTracer = otel.Tracer("royale-stats/cmd/sync")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := &runner{out: os.Stdout}
	if err := r.cliApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode honours cli.Exit codes; anything else exits 1.
func exitCode(err error) int {
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

type runner struct {
	out    io.Writer
	logger *logging.Logger
	app    *app.App

	shutdownObservability func(context.Context) error
}

func (r *runner) cliApp() *cli.App {
	a := &cli.App{
		Name:   "royale-sync",
		Usage:  "Pull Clash Royale data into the configured store",
		Before: r.load,
		After:  r.close,
		// main exits after After has closed storage and flushed spans.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "indent JSON output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "cards",
				Usage:  "Sync the card catalog",
				Action: r.syncCards,
			},
			{
				Name:      "player",
				Usage:     "Sync a player's profile, deck and collection",
				ArgsUsage: "<tag>",
				Action:    r.withTag(r.syncPlayer),
			},
			{
				Name:      "battles",
				Usage:     "Append a player's recent battles",
				ArgsUsage: "<tag>",
				Action:    r.withTag(r.syncBattles),
			},
			{
				Name:      "clan",
				Usage:     "Sync a clan profile",
				ArgsUsage: "<tag>",
				Action:    r.withTag(r.syncClan),
			},
			{
				Name:      "members",
				Usage:     "Sync a clan and every player on its roster",
				ArgsUsage: "<clan tag>",
				Action:    r.withTag(r.syncMembers),
			},
			{
				Name:      "all",
				Usage:     "Sync a player, its battles and its clan",
				ArgsUsage: "<tag>",
				Action:    r.withTag(r.syncAll),
			},
		},
	}
	for _, cmd := range a.Commands {
		cmd.Action = traced(cmd.Action)
	}
	return a
}

// traced runs action under a root span so the sync spans below it are
// exported when tracing is enabled.
func traced(action cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		ctx, span := cliTracer.Start(c.Context, "royale-sync "+c.Command.Name)
		defer span.End()

		c.Context = ctx
		err := action(c)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return err
	}
}

func (r *runner) load(*cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if os.Getenv("APP_SERVICE_NAME") == "" {
		cfg.ServiceName = "royale-sync"
	}
	// stdout carries the JSON results.
	r.logger = logging.NewJSONTo(os.Stderr, cfg.LogLevel).With("service", cfg.ServiceName, "version", cfg.ServiceVersion)
	logging.SetDefault(r.logger)

	cfg.PprofEnabled = false
	r.shutdownObservability, err = observability.Setup(cfg, r.logger)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}

	r.app, err = app.New(cfg, r.logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	return nil
}

func (r *runner) close(*cli.Context) error {
	if r.logger != nil {
		defer func() { _ = r.logger.Sync() }()
	}
	if r.shutdownObservability != nil {
		// Flush spans even when the command context was cancelled.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		defer func() {
			if err := r.shutdownObservability(ctx); err != nil {
				r.logger.Warn("shutdown observability failed", "error", err)
			}
		}()
	}
	if r.app == nil {
		return nil
	}
	return r.app.Close()
}

func (r *runner) withTag(fn func(c *cli.Context, tag string) (any, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.Exit(fmt.Sprintf("%s: expected exactly one tag argument", c.Command.Name), 2)
		}
		result, err := fn(c, c.Args().First())
		if err != nil {
			return err
		}
		if err := r.print(c, result); err != nil {
			return err
		}
		if p, ok := result.(partialResult); ok && p.Partial() {
			return cli.Exit(c.Command.Name+": finished with failures", 1)
		}
		return nil
	}
}

type partialResult interface {
	Partial() bool
}

func (r *runner) syncCards(c *cli.Context) error {
	result, err := r.app.SyncService.SyncCards(c.Context)
	if err != nil {
		return err
	}
	return r.print(c, result)
}

func (r *runner) syncPlayer(c *cli.Context, tag string) (any, error) {
	return r.app.SyncService.SyncPlayer(c.Context, tag)
}

func (r *runner) syncBattles(c *cli.Context, tag string) (any, error) {
	return r.app.SyncService.SyncBattleLogs(c.Context, tag)
}

func (r *runner) syncClan(c *cli.Context, tag string) (any, error) {
	return r.app.SyncService.SyncClan(c.Context, tag)
}

func (r *runner) syncMembers(c *cli.Context, tag string) (any, error) {
	return r.app.SyncService.SyncClanMembers(c.Context, tag)
}

func (r *runner) syncAll(c *cli.Context, tag string) (any, error) {
	return r.app.SyncService.SyncAll(c.Context, tag)
}

func (r *runner) print(c *cli.Context, v any) error {
	var (
		out []byte
		err error
	)
	if c.Bool("pretty") {
		out, err = sonic.ConfigStd.MarshalIndent(v, "", "  ")
	} else {
		out, err = sonic.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(r.out, string(out))
	return err
}
