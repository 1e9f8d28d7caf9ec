package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ksarapp/ksar-backend/migrations"
)

// NewMigrator returns a goose provider over the embedded migrations, bound to
// the given pool. The returned close function releases the database/sql handle.
func NewMigrator(pool *pgxpool.Pool) (*goose.Provider, func() error, error) {
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}

	return provider, db.Close, nil
}

// Migrate applies all pending migrations and returns how many were applied.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	provider, closeDB, err := NewMigrator(pool)
	if err != nil {
		return 0, err
	}
	defer func() { _ = closeDB() }()

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}

	return len(results), nil
}
