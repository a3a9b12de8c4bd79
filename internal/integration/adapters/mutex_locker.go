// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"

	"github.com/print-shop/ledger/internal/application/adapter"
)

// mutexLocker implements adapter.WriteLocker for a single process.
type mutexLocker struct {
	sem chan struct{}
}

// NewMutexLocker creates an in-process write locker.
func NewMutexLocker() adapter.WriteLocker {
	return &mutexLocker{sem: make(chan struct{}, 1)}
}

// Acquire blocks until the lock is free or ctx is done.
func (l *mutexLocker) Acquire(ctx context.Context) (adapter.ReleaseFunc, error) {
	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	released := false
	return func(context.Context) error {
		if !released {
			released = true
			<-l.sem
		}
		return nil
	}, nil
}
