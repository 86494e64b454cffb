// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"inspection/config"
	"inspection/internal/domain/entity"
	domainerrors "inspection/internal/domain/errors"
	"inspection/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionClaims is the wire shape of a session token.
type sessionClaims struct {
	Roles    []string `json:"roles"`
	Platform string   `json:"platform"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret   []byte
	issuer   string
	policies entity.RolePolicies
	now      func() time.Time
}

// NewJWTService is the constructor for jwtService. The secret is read once here
// and never again from configuration.
func NewJWTService(cfg *config.Config, policies entity.RolePolicies) (service.TokenService, error) {
	issuer := ""
	if cfg.Auth != nil {
		issuer = cfg.Auth.Token.Issuer
	}

	return newJWTService(cfg.SecretKey.Token, issuer, policies, time.Now)
}

func newJWTService(secret, issuer string, policies entity.RolePolicies, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if len(policies) == 0 {
		return nil, errors.New("role policies must be provided")
	}

	return &jwtService{
		secret:   []byte(secret),
		issuer:   issuer,
		policies: policies,
		now:      now,
	}, nil
}

// Issue signs a token whose lifetime follows the account's primary role.
func (s *jwtService) Issue(account *entity.Account, platform entity.Platform) (*service.IssuedToken, error) {
	if account == nil {
		return nil, errors.New("account is required")
	}
	if !platform.IsValid() {
		return nil, errors.Errorf("unknown platform %q", platform)
	}

	primary, ok := account.Roles.Primary()
	if !ok {
		return nil, errors.Errorf("account %s has no known role", account.ID)
	}
	policy, ok := s.policies.For(primary)
	if !ok {
		return nil, errors.Errorf("no policy for role %s", primary)
	}

	// NumericDate has second precision; truncate so the returned times match the claims.
	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(policy.TokenLifetime)

	claims := sessionClaims{
		Roles:    account.Roles.ToStrings(),
		Platform: platform.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}

	return &service.IssuedToken{
		Value:     signed,
		Platform:  platform,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
		Lifetime:  policy.TokenLifetime,
	}, nil
}

// Verify checks signature, algorithm, issuer and expiry, then decodes the claims.
func (s *jwtService) Verify(tokenString string) (*service.TokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}

	if claims.IssuedAt == nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("issued-at claim is missing")
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("subject is not an account id")
	}

	platform, ok := entity.ParsePlatform(claims.Platform)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("unknown platform claim")
	}

	roles := entity.RolesFromStrings(claims.Roles)
	if len(roles) == 0 {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token carries no known role")
	}

	return &service.TokenClaims{
		AccountID: accountID,
		Roles:     roles,
		Platform:  platform,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
