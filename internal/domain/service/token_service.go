package service

import (
	"time"

	"inspection/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenClaims is the verified content of a session token.
type TokenClaims struct {
	AccountID uuid.UUID
	Roles     entity.Roles
	Platform  entity.Platform
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IssuedToken is a freshly signed session token.
type IssuedToken struct {
	Value     string
	Platform  entity.Platform
	IssuedAt  time.Time
	ExpiresAt time.Time
	Lifetime  time.Duration
}

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	// Issue signs a token for the account bound to the given platform.
	// The lifetime comes from the policy of the account's primary role.
	Issue(account *entity.Account, platform entity.Platform) (*IssuedToken, error)

	// Verify checks signature and expiry and returns the claims.
	// It fails with ErrTokenExpired or ErrTokenInvalid.
	Verify(token string) (*TokenClaims, error)
}
