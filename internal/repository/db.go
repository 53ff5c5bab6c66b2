package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/edulend/loanassist/gen/ent"
)

type Config struct {
	Driver           string // "sqlite" | "postgres"
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// Open creates an ent client for the configured driver. The returned cleanup
// closes everything that was opened.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*ent.Client, func(), error) {
	switch cfg.Driver {
	case "", "sqlite":
		return openSQLite(cfg, logger)
	case "postgres":
		return openPostgres(ctx, cfg, logger)
	default:
		return nil, nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
	}
}

func openSQLite(cfg Config, logger *slog.Logger) (*ent.Client, func(), error) {
	logger.Info("opening sqlite database", "dsn", cfg.DSN)
	db, err := sql.Open("sqlite", cfg.DSN)
	if err != nil {
		logger.Error("failed to open sqlite database", "error", err)
		return nil, nil, err
	}
	// the modernc driver is not safe for concurrent writes on one connection
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	cleanup := func() {
		if cerr := client.Close(); cerr != nil {
			logger.Error("failed to close ent client", "error", cerr)
		}
	}
	return client, cleanup, nil
}

// openPostgres creates a pgx pool and wraps it for ent.
func openPostgres(ctx context.Context, cfg Config, logger *slog.Logger) (*ent.Client, func(), error) {
	logger.Info("connecting to postgres")
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse postgres dsn", "error", err)
		return nil, nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "loanassist"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}

	dialCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(dialCtx, pc)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		return nil, nil, err
	}

	// Wrap pool as *sql.DB for ent
	db := stdlib.OpenDBFromPool(pool)
	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))

	cleanup := func() {
		if cerr := client.Close(); cerr != nil {
			logger.Error("failed to close ent client", "error", cerr)
		}
		pool.Close()
	}
	logger.Info("successfully connected to postgres")
	return client, cleanup, nil
}

// Migrate creates or updates the schema. Safe to run on every start for the
// embedded store.
func Migrate(ctx context.Context, client *ent.Client, logger *slog.Logger) error {
	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		return err
	}
	logger.Debug("schema migration ok")
	return nil
}
