package ratelimit

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// incrementScript bumps the counter and opens the window on the first hit.
// A counter found without a TTL gets one too, so a window can never stick.
var incrementScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if redis.call('PTTL', KEYS[1]) < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return count
`)

// RedisStore shares counters across instances. Each increment is one atomic
// script call.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a Redis-backed counter store.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

// Increment implements CounterStore.
func (s *RedisStore) Increment(ctx context.Context, key string, length time.Duration) (int64, error) {
	count, err := incrementScript.Run(ctx, s.client, []string{key}, length.Milliseconds()).Int64()
	if err != nil {
		return 0, errors.Wrap(err, "redis increment")
	}

	return count, nil
}
