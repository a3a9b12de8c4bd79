package adapters

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/print-shop/ledger/internal/application/adapter"
)

func newRedisLocker(t *testing.T, ttl time.Duration) (adapter.WriteLocker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLocker(client, "ledger:test-lock", ttl), mr
}

func TestLockersSerializeHolders(t *testing.T) {
	redisLocker, _ := newRedisLocker(t, time.Second)

	lockers := map[string]adapter.WriteLocker{
		"mutex": NewMutexLocker(),
		"redis": redisLocker,
	}

	for name, locker := range lockers {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			var (
				mu      sync.Mutex
				holders int
				maxSeen int
				wg      sync.WaitGroup
			)
			for i := 0; i < 5; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					release, err := locker.Acquire(ctx)
					if !assert.NoError(t, err) {
						return
					}

					mu.Lock()
					holders++
					if holders > maxSeen {
						maxSeen = holders
					}
					mu.Unlock()

					time.Sleep(5 * time.Millisecond)

					mu.Lock()
					holders--
					mu.Unlock()

					assert.NoError(t, release(ctx))
				}()
			}
			wg.Wait()

			assert.Equal(t, 1, maxSeen)
		})
	}
}

func TestLockersHonourContext(t *testing.T) {
	redisLocker, _ := newRedisLocker(t, time.Second)

	lockers := map[string]adapter.WriteLocker{
		"mutex": NewMutexLocker(),
		"redis": redisLocker,
	}

	for name, locker := range lockers {
		t.Run(name, func(t *testing.T) {
			release, err := locker.Acquire(context.Background())
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			_, err = locker.Acquire(ctx)
			assert.True(t, errors.Is(err, context.DeadlineExceeded))

			require.NoError(t, release(context.Background()))

			release, err = locker.Acquire(context.Background())
			require.NoError(t, err)
			require.NoError(t, release(context.Background()))
		})
	}
}

func TestRedisLockerDoesNotReleaseForeignLock(t *testing.T) {
	locker, mr := newRedisLocker(t, time.Second)
	ctx := context.Background()

	release, err := locker.Acquire(ctx)
	require.NoError(t, err)

	// The TTL elapses and another replica takes the lock.
	mr.FastForward(2 * time.Second)
	require.NoError(t, mr.Set("ledger:test-lock", "other-holder"))

	err = release(ctx)
	assert.ErrorIs(t, err, ErrLockLost)

	value, err := mr.Get("ledger:test-lock")
	require.NoError(t, err)
	assert.Equal(t, "other-holder", value)
}
