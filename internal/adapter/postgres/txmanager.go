package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

// Beginner starts a transaction. Implemented by *pgxpool.Pool and pgx.Tx.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type txOptionsBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

const (
	defaultTxAttempts   = 3
	defaultTxRetryDelay = 50 * time.Millisecond
)

// TxManager manages database transactions using the context pattern.
// A single RunInTx call owns the transaction; nested scopes go through
// RunInSavepoint.
type TxManager struct {
	db         Beginner
	attempts   uint
	retryDelay time.Duration
}

// TxOption configures a TxManager.
type TxOption func(*TxManager)

// WithRetry sets how many times a transaction aborted by a serialization
// failure or deadlock is attempted in total.
func WithRetry(attempts uint, delay time.Duration) TxOption {
	return func(m *TxManager) {
		if attempts > 0 {
			m.attempts = attempts
		}
		m.retryDelay = delay
	}
}

// NewTxManager creates a new TxManager.
func NewTxManager(db Beginner, opts ...TxOption) *TxManager {
	m := &TxManager{
		db:         db,
		attempts:   defaultTxAttempts,
		retryDelay: defaultTxRetryDelay,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default).
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
// Serialization failures and deadlocks re-run fn in a fresh transaction.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	err := retry.Do(
		func() error {
			return m.runOnce(ctx, fn)
		},
		retry.Attempts(m.attempts),
		retry.LastErrorOnly(true),
		retry.Delay(m.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(IsRetryable),
		retry.Context(ctx),
	)
	if err != nil && ctx.Err() != nil && !errors.Is(err, domain.ErrTimeout) {
		return fmt.Errorf("transaction: %w: %w", domain.ErrTimeout, err)
	}
	return err
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", MapError(err, "transaction", ""))
	}
	return finish(ctx, tx, fn)
}

// RunReadOnly runs fn in a REPEATABLE READ READ ONLY transaction so every read
// inside fn sees the same snapshot. Inside an existing transaction fn reuses it.
func (m *TxManager) RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	b, ok := m.db.(txOptionsBeginner)
	if !ok {
		return fmt.Errorf("begin read-only transaction: %T cannot set transaction options: %w", m.db, domain.ErrStoreFailure)
	}

	tx, err := b.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return fmt.Errorf("begin read-only transaction: %w", MapError(err, "transaction", ""))
	}
	return finish(ctx, tx, fn)
}

// RunInSavepoint executes fn inside a savepoint of the transaction carried by
// ctx. A failure rolls back only the savepoint and leaves the enclosing
// transaction usable. Without a transaction in ctx it behaves like a
// single-attempt RunInTx.
func (m *TxManager) RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	outer, ok := txFromCtx(ctx)
	if !ok {
		return m.runOnce(ctx, fn)
	}

	sp, err := outer.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin savepoint: %w", MapError(err, "savepoint", ""))
	}
	return finish(ctx, sp, fn)
}

func finish(ctx context.Context, tx pgx.Tx, fn func(ctx context.Context) error) error {
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && ctx.Err() == nil {
			return fmt.Errorf("rollback failed: %w (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", MapError(err, "transaction", ""))
	}

	return nil
}
