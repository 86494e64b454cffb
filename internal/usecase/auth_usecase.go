// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"inspection/internal/domain/entity"
	"inspection/internal/domain/service"
)

// --- Input DTOs ---

// SignInInput defines the data required for an account to sign in.
type SignInInput struct {
	Handle   string
	Secret   string
	Device   *entity.DeviceDescriptor // nil when the client declared no device
	Evidence service.PlatformEvidence
	Origin   string // client IP
}

// --- Output DTOs ---

// SignInOutput returns the issued token and the account it was issued to.
type SignInOutput struct {
	Account *entity.Account
	Token   *service.IssuedToken
}

// AuthUsecase defines the sign-in flow.
type AuthUsecase interface {
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)
}

// CredentialValidator checks a handle and secret against the account directory.
type CredentialValidator interface {
	// Validate fails with ErrUnknownHandle, ErrBadSecret or ErrUserInactive.
	Validate(ctx context.Context, handle, secret string) (*entity.Account, error)
}
