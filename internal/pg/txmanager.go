package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:generate mockgen -source=txmanager.go -destination=mock_txmanager.go -package=pg

// TXManager runs a function inside a database transaction. A nested Begin
// reuses the transaction already bound to the context, so composite service
// flows (ledger debit + stock decrement + redemption insert) commit or fail
// as one unit.
type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

func txFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

const (
	txMaxRetries    = 3
	txRetryInterval = 50 * time.Millisecond
)

type Manager struct {
	pool *pgxpool.Pool
}

func NewTXManager(pool *pgxpool.Pool) *Manager {
	return &Manager{pool: pool}
}

func (m *Manager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= txMaxRetries; attempt++ {
		err = m.runTx(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		zap.L().Warn("transaction conflict, retrying",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(txRetryInterval * time.Duration(attempt)):
		}
	}
	return err
}

func (m *Manager) runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)
	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			zap.L().Error("rollback failed", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit(ctx)
}

// isRetryable reports whether the error is a serialization or deadlock
// failure that a fresh attempt can resolve.
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
