// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-recipe-box/internal/store"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// and to give up once ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// ConnectionPool is the part of [store.Pool] the database bootstrap needs.
type ConnectionPool interface {
	Initialize(ctx context.Context) error
	Conn(ctx context.Context) (*store.DB, error)
	Ping(ctx context.Context) error
	State() store.PoolState
}

// MigrateFunc applies the schema migrations to an open database.
type MigrateFunc func(ctx context.Context, db *sql.DB) error
