package pg

import (
	"context"
	"embed"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded schema migrations using goose. Goose speaks
// database/sql, so the pool is bridged through pgx's stdlib adapter; closing
// the bridge returns its connections to the pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if cfg.MigrationsTable != "" {
		goose.SetTableName(cfg.MigrationsTable)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	log.InfoContext(ctx, "database migrations applied", slog.Int64("version", version))

	return nil
}
