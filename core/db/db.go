package db

import (
	"context"
	"fmt"

	"basegraph.app/helpdesk/core/db/sqlc"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a pgxpool.Pool and provides transaction support.
type DB struct {
	pool *pgxpool.Pool
}

type Config struct {
	DSN      string
	MaxConns int32
	MinConns int32
}

// New creates a new DB instance with the given configuration.
func New(ctx context.Context, cfg Config) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolCfg.MaxConns = 10
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MinConns = 2
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{pool: pool}, nil
}

func (db *DB) Close() {
	db.pool.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Queries returns a new Queries instance for non-transactional operations.
func (db *DB) Queries() *sqlc.Queries {
	return sqlc.New(db.pool)
}

// WithTx executes fn within a read-committed transaction.
// The transaction is rolled back if fn returns an error and committed otherwise.
//
// Assignment writes rely on conditional UPDATEs inside this transaction
// (WHERE assigned_expert_id IS NULL), so read committed is sufficient:
// the row lock taken by the first UPDATE makes the loser observe zero rows.
func (db *DB) WithTx(ctx context.Context, fn func(q *sqlc.Queries) error) error {
	tx, err := db.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// No-op once committed.
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(sqlc.New(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
