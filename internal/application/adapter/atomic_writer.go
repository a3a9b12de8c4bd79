package adapter

import "context"

// AtomicWriter runs a validate-then-write unit so that no other write can
// interleave with it. The context passed to fn carries the unit's storage
// transaction and must be handed to every repository call made inside fn.
type AtomicWriter interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReleaseFunc releases a lock obtained from a WriteLocker.
type ReleaseFunc func(ctx context.Context) error

// WriteLocker serializes ledger writes.
type WriteLocker interface {
	// Acquire blocks until the ledger write lock is held or ctx is done.
	Acquire(ctx context.Context) (ReleaseFunc, error)
}
