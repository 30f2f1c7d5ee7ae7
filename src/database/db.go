package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Database holds the PostgreSQL connection pool
type Database struct {
	pool *pgxpool.Pool
}

// New creates a new database connection and applies schema.sql
func New(ctx context.Context, databaseURL string) (*Database, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Configure connection pool
	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	db := &Database{pool: pool}

	if err := db.initializeSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// NewFromPool wraps an existing pool (used by tests)
func NewFromPool(pool *pgxpool.Pool) *Database {
	return &Database{pool: pool}
}

// Close closes the database connection pool
func (db *Database) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// GetPool returns the connection pool
func (db *Database) GetPool() *pgxpool.Pool {
	return db.pool
}

// initializeSchema reads and executes schema.sql
func (db *Database) initializeSchema(ctx context.Context) error {
	schemaPath := "schema.sql"

	content, err := os.ReadFile(schemaPath)
	if err != nil {
		// Fall back to the executable's directory
		if exe, exeErr := os.Executable(); exeErr == nil {
			content, err = os.ReadFile(filepath.Join(filepath.Dir(exe), schemaPath))
		}
		if err != nil {
			return fmt.Errorf("failed to read schema.sql: %w", err)
		}
	}

	if _, err := db.pool.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// Health checks if the database is healthy
func (db *Database) Health(ctx context.Context) error {
	if db == nil || db.pool == nil {
		return fmt.Errorf("database connection not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.pool.Ping(ctx)
}
