package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/riskibarqy/royale-stats/db"
	"github.com/riskibarqy/royale-stats/external/royaleapi"
	"github.com/riskibarqy/royale-stats/internal/config"
	"github.com/riskibarqy/royale-stats/internal/domain/battle"
	"github.com/riskibarqy/royale-stats/internal/domain/card"
	"github.com/riskibarqy/royale-stats/internal/domain/clan"
	"github.com/riskibarqy/royale-stats/internal/domain/player"
	cacherepo "github.com/riskibarqy/royale-stats/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/royale-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/royale-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/royale-stats/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/royale-stats/internal/platform/cache"
	"github.com/riskibarqy/royale-stats/internal/platform/logging"
	"github.com/riskibarqy/royale-stats/internal/platform/resilience"
	"github.com/riskibarqy/royale-stats/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// App holds the wired services shared by the HTTP server and the sync CLI.
type App struct {
	cfg    config.Config
	logger *logging.Logger
	db     *sqlx.DB

	SyncService  *usecase.SyncService
	QueryService *usecase.QueryService
}

type repositories struct {
	cards   card.Repository
	players player.Repository
	battles battle.Repository
	clans   clan.Repository
}

// New opens storage for cfg.StorageDriver and builds the services on top of it.
func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	conn, repos, err := openStorage(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.cards = cacherepo.NewCardRepository(repos.cards, store)
		repos.clans = cacherepo.NewClanRepository(repos.clans, store)
	}

	api := royaleapi.NewClient(royaleapi.ClientConfig{
		BaseURL: cfg.RoyaleAPIBaseURL,
		Token:   cfg.RoyaleAPIToken,
		Timeout: cfg.RoyaleAPITimeout,
		Logger:  logger.Named("royaleapi"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.RoyaleAPICircuitEnabled,
			FailureThreshold: cfg.RoyaleAPICircuitFailures,
			OpenTimeout:      cfg.RoyaleAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.RoyaleAPICircuitHalfOpenMax,
		},
	})

	return &App{
		cfg:    cfg,
		logger: logger,
		db:     conn,
		SyncService: usecase.NewSyncService(api, repos.cards, repos.players, repos.battles, repos.clans, usecase.SyncServiceConfig{
			RosterWorkers: cfg.SyncRosterWorkers,
			Logger:        logger.Named("sync"),
		}),
		QueryService: usecase.NewQueryService(repos.cards, repos.players, repos.battles, repos.clans),
	}, nil
}

func (a *App) NewHTTPServer() (*http.Server, error) {
	logger := a.logger.Named("http")
	handler := httpapi.NewHandler(a.SyncService, a.QueryService, logger)
	router := httpapi.NewRouter(handler, logger, a.cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         a.cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// Ping checks the database connection; memory storage always answers nil.
func (a *App) Ping(ctx context.Context) error {
	if a.db == nil {
		return nil
	}
	return a.db.PingContext(ctx)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func openStorage(cfg config.Config, logger *logging.Logger) (*sqlx.DB, repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		cards := memory.NewCardRepository()
		return nil, repositories{
			cards:   cards,
			players: memory.NewPlayerRepository(cards),
			battles: memory.NewBattleRepository(),
			clans:   memory.NewClanRepository(),
		}, nil
	case config.StorageDriverPostgres, config.StorageDriverSQLite:
		conn, err := openDB(cfg)
		if err != nil {
			return nil, repositories{}, err
		}
		if cfg.StorageDriver == config.StorageDriverSQLite {
			// SQLite databases are local files; keep their schema current on start.
			if err := db.Up(conn.DB, "sqlite"); err != nil {
				_ = conn.Close()
				return nil, repositories{}, fmt.Errorf("migrate sqlite: %w", err)
			}
		}
		logger.Info("storage opened", "driver", cfg.StorageDriver, "db_name", dbNameFromURL(cfg.DBURL))
		return conn, repositories{
			cards:   postgres.NewCardRepository(conn),
			players: postgres.NewPlayerRepository(conn),
			battles: postgres.NewBattleRepository(conn),
			clans:   postgres.NewClanRepository(conn),
		}, nil
	default:
		return nil, repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	driverName, dbSystem, dsn := "postgres", "postgresql", db.PostgresDSN(cfg.DBURL, cfg.DBDisablePreparedBinary)
	if cfg.StorageDriver == config.StorageDriverSQLite {
		driverName, dbSystem, dsn = "sqlite3", "sqlite", db.SQLiteDSN(cfg.DBURL)
	}

	conn, err := otelsqlx.Open(driverName, dsn,
		otelsql.WithDBSystem(dbSystem),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.StorageDriver, err)
	}
	if cfg.StorageDriver == config.StorageDriverSQLite {
		conn.SetMaxOpenConns(1)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.StorageDriver, err)
	}
	return conn, nil
}
