// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/print-shop/ledger/internal/application/adapter"
)

type txKey struct{}

// conn returns the database handle for ctx: the unit-of-work transaction when
// one is open, otherwise db.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// atomicWriter implements adapter.AtomicWriter with a ledger-wide lock around
// a database transaction.
type atomicWriter struct {
	db          *gorm.DB
	locker      adapter.WriteLocker
	lockTimeout time.Duration
}

// NewAtomicWriter creates a new atomic writer. A zero lockTimeout waits for
// the lock as long as the caller's context allows.
func NewAtomicWriter(db *gorm.DB, locker adapter.WriteLocker, lockTimeout time.Duration) adapter.AtomicWriter {
	return &atomicWriter{
		db:          db,
		locker:      locker,
		lockTimeout: lockTimeout,
	}
}

// Do runs fn under the write lock inside a database transaction. fn joins the
// enclosing unit when ctx already carries one.
func (w *atomicWriter) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	lockCtx := ctx
	if w.lockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, w.lockTimeout)
		defer cancel()
	}

	release, err := w.locker.Acquire(lockCtx)
	if err != nil {
		return fmt.Errorf("failed to acquire ledger write lock: %w", err)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			slog.Error("Failed to release ledger write lock", "error", err)
		}
	}()

	return w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
