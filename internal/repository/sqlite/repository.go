// Package sqlite persists block and identity-change records. It is the
// single-writer store for the ingestion pipeline: block inserts are
// idempotent by height, batch writes are one transaction, identity changes
// are append-only history.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Metrics records per-query metrics.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Repository wraps the SQLite database handle.
type Repository struct {
	db      *sql.DB
	metrics Metrics
}

// NewRepository opens (or creates) the database file. Call Migrate before
// first use on a fresh file.
func NewRepository(path string, metrics Metrics) (*Repository, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// The ingestion pipeline serializes writes; one connection avoids
	// SQLITE_BUSY churn between the writer and the read queries.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return &Repository{db: db, metrics: metrics}, nil
}

// Close releases the database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) observe(operation string, err error, started time.Time) {
	if r.metrics != nil {
		r.metrics.Observe(operation, err, started)
	}
}

// i64 clamps persisted unsigned values into SQLite's integer range.
func i64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
