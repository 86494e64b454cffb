package ratelimit

import (
	"context"

	"inspection/config"
	"inspection/internal/domain/service"

	"github.com/pkg/errors"
)

// TieredLimiter applies per-tier fixed-window ceilings on top of a CounterStore.
type TieredLimiter struct {
	store     CounterStore
	keyPrefix string
	tiers     map[service.RateTier]config.TierConfig
}

// NewTieredLimiter builds the limiter from the configured tiers.
func NewTieredLimiter(store CounterStore, cfg *config.Config) service.RateLimiter {
	tiers := config.DefaultTiers()
	keyPrefix := ""
	if cfg.RateLimit != nil {
		tiers = cfg.RateLimit.Tiers
		keyPrefix = cfg.RateLimit.KeyPrefix
	}

	return &TieredLimiter{
		store:     store,
		keyPrefix: keyPrefix,
		tiers: map[service.RateTier]config.TierConfig{
			service.RateTierLogin:    tiers.Login,
			service.RateTierCritical: tiers.Critical,
			service.RateTierGeneral:  tiers.General,
		},
	}
}

// Allow implements service.RateLimiter.
func (l *TieredLimiter) Allow(ctx context.Context, tier service.RateTier, key string) (bool, error) {
	limits, ok := l.tiers[tier]
	if !ok {
		return false, errors.Errorf("unknown rate tier %q", tier)
	}

	count, err := l.store.Increment(ctx, l.keyPrefix+tier.String()+":"+key, limits.Window)
	if err != nil {
		return false, errors.Wrapf(err, "increment %s counter", tier)
	}

	return count <= int64(limits.Limit), nil
}
