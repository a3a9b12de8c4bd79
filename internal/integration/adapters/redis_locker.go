package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/print-shop/ledger/internal/application/adapter"
)

// ErrLockLost is returned on release when the lock expired and was taken by
// another holder.
var ErrLockLost = errors.New("ledger write lock lost before release")

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

const defaultRetryInterval = 25 * time.Millisecond

// redisLocker implements adapter.WriteLocker on a Redis key so that several
// API replicas share one ledger write lock.
type redisLocker struct {
	client        *redis.Client
	key           string
	ttl           time.Duration
	retryInterval time.Duration
}

// NewRedisLocker creates a Redis-backed write locker. ttl bounds how long a
// crashed holder can keep the lock.
func NewRedisLocker(client *redis.Client, key string, ttl time.Duration) adapter.WriteLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &redisLocker{
		client:        client,
		key:           key,
		ttl:           ttl,
		retryInterval: defaultRetryInterval,
	}
}

// Acquire polls SET NX until the lock is taken or ctx is done.
func (l *redisLocker) Acquire(ctx context.Context) (adapter.ReleaseFunc, error) {
	token := uuid.NewString()

	ticker := time.NewTicker(l.retryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("failed to set lock key: %w", err)
		}
		if ok {
			return l.releaser(token), nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *redisLocker) releaser(token string) adapter.ReleaseFunc {
	return func(ctx context.Context) error {
		deleted, err := releaseScript.Run(ctx, l.client, []string{l.key}, token).Int()
		if err != nil {
			return fmt.Errorf("failed to release lock key: %w", err)
		}
		if deleted == 0 {
			return ErrLockLost
		}
		return nil
	}
}

// NewRedisClient parses a redis:// URL and verifies the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
