// Package store wires the PostgreSQL stores into a transaction runner and
// carries the bootstrap schema.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"studyhub/internal/platform/postgres"
	"studyhub/internal/studygroup/service"
	"studyhub/internal/studygroup/store/group"
	"studyhub/internal/studygroup/store/joinrequest"
	"studyhub/internal/studygroup/store/membership"
	txcontext "studyhub/pkg/platform/tx"
)

//go:embed schema.sql
var schema string

// EnsureSchema creates the tables and indexes when they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

const (
	defaultTxTimeout = 5 * time.Second
	defaultAttempts  = 3
)

// PostgresTx runs each admission transaction in a database transaction.
// Serialization failures and deadlocks roll back and rerun the whole body.
type PostgresTx struct {
	db       *sql.DB
	stores   service.Stores
	timeout  time.Duration
	attempts int
	onRetry  func()
}

type Option func(*PostgresTx)

func WithTimeout(d time.Duration) Option {
	return func(t *PostgresTx) {
		if d > 0 {
			t.timeout = d
		}
	}
}

func WithMaxAttempts(n int) Option {
	return func(t *PostgresTx) {
		if n > 0 {
			t.attempts = n
		}
	}
}

// WithRetryHook is called before every rerun.
func WithRetryHook(fn func()) Option {
	return func(t *PostgresTx) {
		t.onRetry = fn
	}
}

func NewPostgresTx(db *sql.DB, opts ...Option) *PostgresTx {
	t := &PostgresTx{
		db: db,
		stores: service.Stores{
			Groups:   group.NewPostgres(db),
			Members:  membership.NewPostgres(db),
			Requests: joinrequest.NewPostgres(db),
		},
		timeout:  defaultTxTimeout,
		attempts: defaultAttempts,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *PostgresTx) RunInTx(ctx context.Context, fn func(ctx context.Context, stores service.Stores) error) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	var err error
	for attempt := 1; attempt <= t.attempts; attempt++ {
		err = t.runOnce(ctx, fn)
		if err == nil || !postgres.IsRetryable(err) || ctx.Err() != nil {
			return err
		}
		if t.onRetry != nil && attempt < t.attempts {
			t.onRetry()
		}
	}
	return err
}

func (t *PostgresTx) runOnce(ctx context.Context, fn func(ctx context.Context, stores service.Stores) error) (err error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if err = fn(txcontext.WithTx(ctx, tx), t.stores); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
