package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisServer *Redis

// Redis is a miniredis instance shared by every scenario.
type Redis struct {
	server *miniredis.Miniredis
	Client *redis.Client
}

func NewRedis() *Redis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisServer = &Redis{
			server: server,
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		}
	})
	return redisServer
}

// URL returns the connection string understood by the ledger configuration.
func (r *Redis) URL() string {
	return "redis://" + r.server.Addr()
}

func ClearRedis(r *Redis) error {
	return r.Client.FlushAll(context.TODO()).Err()
}
