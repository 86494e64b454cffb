// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "inspection/internal/delivery/context"
	"inspection/internal/domain/entity"
	domainerrors "inspection/internal/domain/errors"
	"inspection/internal/domain/repository"
	"inspection/internal/domain/service"
	"inspection/internal/usecase"

	"github.com/pkg/errors"
)

// dummySecret is hashed once at startup; unknown handles are compared against it.
const dummySecret = "inspection-unknown-handle-placeholder"

type credentialValidator struct {
	accounts  repository.AccountRepository
	hasher    service.PasswordHasher
	dummyHash string
	logger    *slog.Logger
}

// NewCredentialValidator is the constructor for credentialValidator.
func NewCredentialValidator(
	accounts repository.AccountRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) (usecase.CredentialValidator, error) {
	dummyHash, err := hasher.Hash(dummySecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare dummy hash")
	}

	return &credentialValidator{
		accounts:  accounts,
		hasher:    hasher,
		dummyHash: dummyHash,
		logger:    logger,
	}, nil
}

func (v *credentialValidator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, v.logger)
}

// Validate looks the handle up by exact match and compares the secret.
// A wrong secret is reported before the active flag is consulted.
func (v *credentialValidator) Validate(ctx context.Context, handle, secret string) (*entity.Account, error) {
	account, err := v.accounts.FindByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			v.hasher.Check(secret, v.dummyHash)
			v.log(ctx).Debug("Sign-in for unknown handle")

			return nil, domainerrors.ErrUnknownHandle
		}

		return nil, domainerrors.NewUpstreamError(err, "failed to find account by handle")
	}

	if !v.hasher.Check(secret, account.PasswordHash) {
		v.log(ctx).Debug("Sign-in with bad secret", slog.Any("account_id", account.ID))

		return nil, domainerrors.ErrBadSecret
	}

	if !account.Active {
		return nil, domainerrors.ErrUserInactive
	}

	return account, nil
}
