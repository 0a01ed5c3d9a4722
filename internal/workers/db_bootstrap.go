// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/store"
	"github.com/sethvargo/go-retry"
)

const (
	recoveryBaseDelay = time.Second
	recoveryMaxDelay  = 30 * time.Second
)

// DBBootstrap connects the pool and migrates the schema once connectivity
// is proven. Until it finishes, repositories answer with
// [store.ErrNotInitialized]. An unverified pool is pinged with backoff
// until it recovers, and migrated then.
type DBBootstrap struct {
	pool    ConnectionPool
	migrate MigrateFunc

	recoveryBase time.Duration
	recoveryMax  time.Duration

	logger *logger.Logger
}

func NewDBBootstrap(pool ConnectionPool, migrate MigrateFunc, logger *logger.Logger) *DBBootstrap {
	return &DBBootstrap{
		pool:         pool,
		migrate:      migrate,
		recoveryBase: recoveryBaseDelay,
		recoveryMax:  recoveryMaxDelay,
		logger:       logger,
	}
}

func (b *DBBootstrap) Run(ctx context.Context) {
	err := b.pool.Initialize(ctx)
	switch {
	case errors.Is(err, store.ErrConnectionUnverified):
		b.logger.Error().Err(err).Str("func", "*DBBootstrap.Run").Msg("database is unreachable, serving with unverified pool")
		if err := b.awaitRecovery(ctx); err != nil {
			b.logger.Warn().Err(err).Str("func", "*DBBootstrap.Run").Msg("database did not recover")
			return
		}
		b.logger.Info().Str("func", "*DBBootstrap.Run").Msg("database connectivity recovered")
	case err != nil:
		b.logger.Err(err).Str("func", "*DBBootstrap.Run").Msg("error initializing database pool")
		return
	}

	if state := b.pool.State(); state != store.PoolReady {
		b.logger.Warn().
			Str("func", "*DBBootstrap.Run").
			Str("pool_state", state.String()).
			Msg("skipping migrations")
		return
	}

	if b.migrate == nil {
		return
	}

	db, err := b.pool.Conn(ctx)
	if err != nil {
		b.logger.Err(err).Str("func", "*DBBootstrap.Run").Msg("error getting database connection")
		return
	}

	if err := b.migrate(ctx, db.DB); err != nil {
		b.logger.Err(err).Str("func", "*DBBootstrap.Run").Msg("error migrating database")
		return
	}

	b.logger.Info().Str("func", "*DBBootstrap.Run").Msg("database is migrated")
}

// awaitRecovery pings the pool until it answers or ctx is done. A successful
// ping promotes a Failed pool to Ready, whether it comes from here or from
// the health endpoint.
func (b *DBBootstrap) awaitRecovery(ctx context.Context) error {
	backoff := retry.WithCappedDuration(b.recoveryMax, retry.NewExponential(b.recoveryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if b.pool.State() == store.PoolReady {
			return nil
		}
		if err := b.pool.Ping(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}
