// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-recipe-box/internal/config"
	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
)

// PoolState is the lifecycle state of a [Pool].
type PoolState int32

const (
	// PoolUninitialized means no connection pool has been attached yet.
	PoolUninitialized PoolState = iota
	// PoolReady means a pool is attached and its connectivity was proven.
	PoolReady
	// PoolFailed means every connection strategy failed and an unverified
	// pool built from the default settings is attached.
	PoolFailed
)

func (s PoolState) String() string {
	switch s {
	case PoolReady:
		return "ready"
	case PoolFailed:
		return "failed"
	default:
		return "uninitialized"
	}
}

// SSLMode selects whether database connections are encrypted.
type SSLMode int32

const (
	// SSLInsecure disables TLS.
	SSLInsecure SSLMode = iota
	// SSLSecure enables TLS without certificate verification, which is what
	// hosted providers with self-signed chains require.
	SSLSecure
)

func (m SSLMode) String() string {
	if m == SSLSecure {
		return "secure"
	}
	return "insecure"
}

func (m SSLMode) opposite() SSLMode {
	if m == SSLSecure {
		return SSLInsecure
	}
	return SSLSecure
}

// Opener opens a lazily connecting *sql.DB for the given settings and SSL mode.
type Opener func(cfg config.DB, mode SSLMode) (*sql.DB, error)

// connectStep is one row of the connection strategy table.
type connectStep struct {
	mode    SSLMode
	retries uint64
	backoff time.Duration
}

const probeQuery = "SELECT 1"

// Pool is the process-wide connection manager. It establishes the database
// pool lazily, choosing the SSL mode through an ordered strategy table, and
// exposes the active handle to repositories through [Pool.Conn].
//
// The handle is published atomically: readers never block on Initialize.
type Pool struct {
	cfg        config.DB
	production bool
	open       Opener

	handle atomic.Pointer[DB]
	state  atomic.Int32
	mode   atomic.Int32

	// mu serializes Initialize and Close
	mu     sync.Mutex
	closed bool

	logger *logger.Logger
}

// PoolOption customizes a [Pool].
type PoolOption func(*Pool)

// WithOpener replaces the pgx based opener, e.g. with a sqlmock factory.
func WithOpener(open Opener) PoolOption {
	return func(p *Pool) {
		p.open = open
	}
}

// NewPool creates an uninitialized pool manager. No connection is made until
// [Pool.Initialize] is called.
func NewPool(cfg config.DB, production bool, log *logger.Logger, opts ...PoolOption) *Pool {
	p := &Pool{
		cfg:        cfg,
		production: production,
		open:       OpenPostgres,
		logger:     log,
	}
	for _, opt := range opts {
		opt(p)
	}

	log.Debug().Msg("creating database pool manager")
	return p
}

// Initialize establishes the connection pool. It evaluates the strategy
// table in order: the default SSL mode first, then exactly one fallback with
// the opposite mode. Each step makes up to ConnectRetries attempts with
// exponential backoff; every attempt opens a pool and runs a probe query.
//
// When every step fails, a pool built from the default settings is still
// attached, the state becomes [PoolFailed] and [ErrConnectionUnverified] is
// returned. Initialize is a no-op if a pool is already attached.
func (p *Pool) Initialize(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPoolClosed
	}
	if p.handle.Load() != nil {
		return nil
	}

	defaultMode := p.defaultSSLMode()
	p.logger.Info().
		Str("func", "*Pool.Initialize").
		Str("ssl_mode", defaultMode.String()).
		Msg("initializing database pool")

	for _, step := range p.strategy(defaultMode) {
		db, err := p.connect(ctx, step)
		if err == nil {
			p.attach(db, step.mode, PoolReady)
			p.logger.Info().
				Str("func", "*Pool.Initialize").
				Str("ssl_mode", step.mode.String()).
				Msg("database pool is ready")
			return nil
		}

		p.logger.Warn().Err(err).
			Str("func", "*Pool.Initialize").
			Str("ssl_mode", step.mode.String()).
			Msg("connection strategy failed")

		if ctx.Err() != nil {
			break
		}
	}

	db, err := p.open(p.cfg, defaultMode)
	if err != nil {
		p.logger.Err(err).Str("func", "*Pool.Initialize").Msg("unable to build fallback database pool")
		p.state.Store(int32(PoolFailed))
		return fmt.Errorf("%w: %w", ErrConnectionUnverified, err)
	}

	p.attach(db, defaultMode, PoolFailed)
	p.logger.Error().
		Str("func", "*Pool.Initialize").
		Str("ssl_mode", defaultMode.String()).
		Msg("all connection strategies failed, attached unverified pool")

	return ErrConnectionUnverified
}

// Conn returns the active database handle or [ErrNotInitialized].
func (p *Pool) Conn(ctx context.Context) (*DB, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	db := p.handle.Load()
	if db == nil {
		return nil, ErrNotInitialized
	}

	return db, nil
}

// QueryContext runs a query on the active pool.
func (p *Pool) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	db, err := p.Conn(ctx)
	if err != nil {
		return nil, err
	}

	return db.QueryContext(ctx, query, args...)
}

// ExecContext runs a statement on the active pool.
func (p *Pool) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	db, err := p.Conn(ctx)
	if err != nil {
		return nil, err
	}

	return db.ExecContext(ctx, query, args...)
}

// Ping checks connectivity of the active pool. A successful ping promotes a
// [PoolFailed] pool to [PoolReady].
func (p *Pool) Ping(ctx context.Context) error {
	db, err := p.Conn(ctx)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		p.logger.Warn().Err(err).
			Str("func", "*Pool.Ping").
			Str("classification", db.errorClassificator.Classify(err).String()).
			Msg("database ping failed")
		return err
	}

	if p.state.CompareAndSwap(int32(PoolFailed), int32(PoolReady)) {
		p.logger.Info().Str("func", "*Pool.Ping").Msg("database connectivity recovered")
	}

	return nil
}

// State returns the current lifecycle state.
func (p *Pool) State() PoolState {
	return PoolState(p.state.Load())
}

// SSLMode returns the SSL mode of the attached pool.
func (p *Pool) SSLMode() SSLMode {
	return SSLMode(p.mode.Load())
}

// Close closes the active pool. It is safe to call more than once.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	db := p.handle.Swap(nil)
	p.state.Store(int32(PoolUninitialized))
	if db == nil {
		return nil
	}

	p.logger.Info().Str("func", "*Pool.Close").Msg("closing database pool")
	return db.Close()
}

func (p *Pool) attach(db *sql.DB, mode SSLMode, state PoolState) {
	p.mode.Store(int32(mode))
	p.state.Store(int32(state))
	p.handle.Store(NewDB(db, p.logger))
}

func (p *Pool) strategy(defaultMode SSLMode) []connectStep {
	retries := uint64(max(p.cfg.ConnectRetries, 1))

	return []connectStep{
		{mode: defaultMode, retries: retries, backoff: p.cfg.ConnectBackoff},
		{mode: defaultMode.opposite(), retries: retries, backoff: p.cfg.ConnectBackoff},
	}
}

// connect runs one strategy step and returns a probed pool.
func (p *Pool) connect(ctx context.Context, step connectStep) (*sql.DB, error) {
	classifier := NewPostgresErrorClassifier()
	backoff := retry.WithMaxRetries(step.retries-1, retry.NewExponential(max(step.backoff, time.Millisecond)))

	var (
		db      *sql.DB
		attempt int
	)
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		conn, err := p.open(p.cfg, step.mode)
		if err != nil {
			// broken settings stay broken
			return err
		}

		err = conn.PingContext(ctx)
		if err == nil {
			_, err = conn.ExecContext(ctx, probeQuery)
		}
		if err == nil {
			db = conn
			return nil
		}

		_ = conn.Close()
		p.logger.Warn().Err(err).
			Str("func", "*Pool.connect").
			Str("ssl_mode", step.mode.String()).
			Int("attempt", attempt).
			Uint64("max_attempts", step.retries).
			Str("classification", classifier.Classify(err).String()).
			Msg("database connection attempt failed")

		return retry.RetryableError(err)
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// defaultSSLMode is secure if SSL is forced, the app runs in production or
// the database host is not a loopback address.
func (p *Pool) defaultSSLMode() SSLMode {
	if p.cfg.SSL || p.production {
		return SSLSecure
	}
	if !isLoopbackHost(dbHost(p.cfg)) {
		return SSLSecure
	}
	return SSLInsecure
}

func dbHost(cfg config.DB) string {
	if cfg.DSN == "" {
		return cfg.Host
	}

	connCfg, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		return cfg.Host
	}
	return connCfg.Host
}

func isLoopbackHost(host string) bool {
	switch host {
	case "", "localhost", "127.0.0.1", "::1":
		return true
	}
	// unix socket directory
	return strings.HasPrefix(host, "/")
}

// ConnString returns the DSN if set, or a postgres URL assembled from the
// discrete connection settings.
func ConnString(cfg config.DB) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   cfg.Host,
		Path:   "/" + cfg.Name,
	}
	if cfg.Port != 0 {
		u.Host = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	}
	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}

	return u.String()
}

// OpenPostgres is the default [Opener]. It parses the settings with pgx,
// forces the requested SSL mode and opens a database/sql pool through the
// pgx stdlib driver. The returned pool connects lazily.
func OpenPostgres(cfg config.DB, mode SSLMode) (*sql.DB, error) {
	connCfg, err := pgx.ParseConfig(ConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDSN, err)
	}

	if mode == SSLSecure {
		connCfg.TLSConfig = &tls.Config{
			InsecureSkipVerify: true,
			ServerName:         connCfg.Host,
		}
	} else {
		connCfg.TLSConfig = nil
	}
	// no implicit sslmode=prefer fallbacks, the strategy table decides
	connCfg.Fallbacks = nil

	db := stdlib.OpenDB(*connCfg)
	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
		db.SetMaxIdleConns(cfg.MaxConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}
