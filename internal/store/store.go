// Package store is the relational storage gateway: a pgx connection pool,
// idempotent schema creation and transactional units of work.
package store

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// DefaultTimeout bounds a single repository call when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// DBTX is implemented by *pgxpool.Pool and pgx.Tx, so repositories work the
// same inside and outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Options struct {
	MaxConns int32
	Timeout  time.Duration
}

type Gateway struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// Open connects to the store and pings it. Any failure is reported as
// ErrStorageUnavailable; callers must not seed or serve after it.
func Open(ctx context.Context, dsn string, opts Options) (*Gateway, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: parse dsn: %v", ErrStorageUnavailable, err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrStorageUnavailable, err)
	}

	log.Printf("[store] connected host=%s db=%s max_conns=%d", cfg.ConnConfig.Host, cfg.ConnConfig.Database, cfg.MaxConns)
	return &Gateway{pool: pool, timeout: opts.Timeout}, nil
}

// DB returns the pool as a non-transactional handle.
func (g *Gateway) DB() DBTX { return g.pool }

func (g *Gateway) Timeout() time.Duration { return g.timeout }

// EnsureSchema creates the users, orders and offers tables if absent.
func (g *Gateway) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if _, err := g.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// WithTx runs fn inside one transaction. It commits when fn returns nil and
// rolls back on an error or panic raised inside fn.
func (g *Gateway) WithTx(ctx context.Context, fn func(q DBTX) error) error {
	tx, err := g.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (g *Gateway) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.pool.Ping(ctx)
}

func (g *Gateway) Close() { g.pool.Close() }

// LockXact takes a transaction-scoped advisory lock; it is released on commit
// or rollback.
func LockXact(ctx context.Context, q DBTX, key int64) error {
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, key); err != nil {
		return fmt.Errorf("advisory lock %d: %w", key, err)
	}
	return nil
}

// CallTimeout derives the per-call deadline used by repositories.
func CallTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultTimeout
	}
	return context.WithTimeout(ctx, d)
}
