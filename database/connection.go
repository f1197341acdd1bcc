package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps the pgx pool that the repositories and the vector importer
// share for the lifetime of the process
type DB struct {
	*pgxpool.Pool
}

// NewConnection opens a connection pool against the puzzle database
// and verifies it is reachable before handing it out
func NewConnection(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close releases the underlying pool
func (db *DB) Close() {
	db.Pool.Close()
}
