package ratelimit

import (
	"context"
	"log/slog"
	"strings"

	"inspection/config"
	"inspection/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewCounterStore selects the counter store named by rateLimit.store and ties
// its background work to the fx lifecycle.
func NewCounterStore(params Params) (CounterStore, error) {
	cfg := params.Config.RateLimit

	switch strings.ToLower(cfg.Store) {
	case config.RateLimitStoreRedis:
		client := newRedisClient(params.Config.Redis)
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping Redis")
				}
				params.Logger.Info("Rate limit counters use Redis", slog.String("addr", params.Config.Redis.Addr))

				return nil
			},
			OnStop: func(_ context.Context) error {
				return errors.WithStack(client.Close())
			},
		})

		return NewRedisStore(client), nil

	case config.RateLimitStoreMemory, "":
		store := NewMemoryStore()
		params.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				store.StartJanitor(cfg.CleanupInterval)
				params.Logger.Info("Rate limit counters are process-local; limits are enforced per instance")

				return nil
			},
			OnStop: func(ctx context.Context) error {
				stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				return store.StopJanitor(stopCtx)
			},
		})

		return store, nil

	default:
		return nil, errors.Errorf("unknown rate limit store %q", cfg.Store)
	}
}

func newRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
}
