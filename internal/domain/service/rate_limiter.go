package service

import "context"

// RateTier is a named request sensitivity class with its own window and ceiling.
type RateTier string

const (
	RateTierLogin    RateTier = "login"
	RateTierCritical RateTier = "critical"
	RateTierGeneral  RateTier = "general"
)

// String returns the string representation of the RateTier.
func (t RateTier) String() string {
	return string(t)
}

// RateLimiter counts requests per tier and key within fixed windows.
type RateLimiter interface {
	// Allow records one request and reports whether it is within the tier ceiling.
	// An error means the counter could not be updated; callers must not treat it as allowed.
	Allow(ctx context.Context, tier RateTier, key string) (bool, error)
}
