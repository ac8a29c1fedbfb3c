package postgres

import (
	"context"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/langowen/fxdash/internal/entities"
	"github.com/pkg/errors"
	"log/slog"
	"time"
)

// DB is the subset of *pgxpool.Pool the storage needs.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Storage struct {
	db DB
}

func NewStorage(db DB) *Storage {
	return &Storage{
		db: db,
	}
}

const schema = `
	CREATE TABLE IF NOT EXISTS preferences (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// InitStorage opens the pool, checks the connection and makes sure the
// preferences table exists. The caller closes the returned pool.
func InitStorage(ctx context.Context, dsn string, timeout time.Duration) (*Storage, *pgxpool.Pool, error) {
	const op = "storage.postgres.InitStorage"

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: parse config failed: %w", op, err)
	}
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 10 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		slog.Error("pgxpool connect failed", "error", err)
		return nil, nil, fmt.Errorf("%s: pgxpool connect failed: %w", op, err)
	}

	if err := pool.Ping(ctx); err != nil {
		slog.Error("pgxpool ping failed", "error", err)
		pool.Close()
		return nil, nil, fmt.Errorf("%s: ping failed: %w", op, err)
	}

	storage := NewStorage(pool)

	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, errors.Wrap(err, op)
	}

	slog.Info("PostgresSQL storage initialized successfully")

	return storage, pool, nil
}

func (s *Storage) initSchema(ctx context.Context) error {
	const op = "storage.postgres.initSchema"

	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	const op = "storage.postgres.Get"

	var value string
	err := s.db.QueryRow(ctx, `SELECT value FROM preferences WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", entities.ErrNotFound
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return value, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	const op = "storage.postgres.Set"

	_, err := s.db.Exec(ctx, `
		INSERT INTO preferences (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
