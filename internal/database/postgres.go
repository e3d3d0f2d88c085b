package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Database connected", "min_conns", poolCfg.MinConns, "max_conns", poolCfg.MaxConns)
	return pool, nil
}

// RunMigrations applies the schema. Statements are idempotent so startup can
// run them unconditionally.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS mood_submissions (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			mood TEXT NOT NULL,
			comment TEXT CHECK (char_length(comment) <= 350),
			user_id TEXT NOT NULL,
			submitted_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		// submitted_at is a timestamp without time zone, so the ::date cast is
		// immutable and usable in an index expression.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_mood_submissions_user_day
			ON mood_submissions (user_id, (submitted_at::date))`,
		`CREATE INDEX IF NOT EXISTS idx_mood_submissions_submitted_at
			ON mood_submissions (submitted_at)`,
	}

	for _, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	slog.Info("Database migrations completed")
	return nil
}
