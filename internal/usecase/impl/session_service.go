package impl

import (
	"context"
	"log/slog"
	"time"

	"inspection/config"
	deliverycontext "inspection/internal/delivery/context"
	"inspection/internal/domain/entity"
	domainerrors "inspection/internal/domain/errors"
	"inspection/internal/domain/repository"
	"inspection/internal/domain/service"
	"inspection/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Accounts repository.AccountRepository
	Tokens   service.TokenService
	Resolver service.PlatformResolver
	Devices  usecase.DeviceBindingValidator
	Recorder usecase.SessionRecorder
	Config   *config.Config
	Logger   *slog.Logger
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	accounts  repository.AccountRepository
	tokens    service.TokenService
	resolver  service.PlatformResolver
	devices   usecase.DeviceBindingValidator
	recorder  usecase.SessionRecorder
	minLength int
	maxLength int
	logger    *slog.Logger
	now       func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		accounts:  params.Accounts,
		tokens:    params.Tokens,
		resolver:  params.Resolver,
		devices:   params.Devices,
		recorder:  params.Recorder,
		minLength: params.Config.Auth.Token.MinLength,
		maxLength: params.Config.Auth.Token.MaxLength,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Validate walks the session states in order and stops at the first rejection.
func (srv *sessionService) Validate(ctx context.Context, input usecase.SessionInput) (*entity.Session, error) {
	// 1. Token location
	if input.Token == "" || input.Channel == usecase.TokenChannelNone {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	// 2. Shape
	if n := len(input.Token); n < srv.minLength || n > srv.maxLength {
		return nil, domainerrors.ErrTokenMalformed
	}

	// 3. Signature and expiry
	claims, err := srv.tokens.Verify(input.Token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.String("channel", string(input.Channel)), slog.Any("error", err))

		return nil, err
	}

	// 4. Platform
	platform := srv.resolver.Resolve(input.Evidence)
	if platform != claims.Platform {
		srv.log(ctx).Info("Token replayed on another platform",
			slog.Any("account_id", claims.AccountID),
			slog.String("token_platform", claims.Platform.String()),
			slog.String("request_platform", platform.String()),
		)

		return nil, domainerrors.ErrPlatformMismatch
	}

	// 5. Account
	account, err := srv.accounts.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAuthenticationRequired
		}

		return nil, domainerrors.NewUpstreamError(err, "failed to load account")
	}

	if !account.Active {
		return nil, domainerrors.ErrUserInactive
	}

	// 6. Device binding
	if err := srv.devices.CheckRequest(account, input.DeviceHeader, platform); err != nil {
		srv.log(ctx).Info("Device check failed", slog.Any("account_id", account.ID), slog.Any("error", err))

		return nil, err
	}

	// 7. Best-effort telemetry
	srv.recorder.Record(ctx, account.ID, entity.SessionMeta{
		At:               srv.now(),
		Origin:           input.Origin,
		ClientDescriptor: input.Evidence.UserAgent,
	})

	return &entity.Session{
		Account:    account,
		Platform:   platform,
		IssuedAt:   claims.IssuedAt,
		ExpiresAt:  claims.ExpiresAt,
		TokenRoles: claims.Roles,
	}, nil
}

// LoadRoles fetches the role set for the authorization gate.
func (srv *sessionService) LoadRoles(ctx context.Context, accountID uuid.UUID) (entity.Roles, error) {
	roles, err := srv.accounts.FindRoles(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAuthenticationRequired
		}

		return nil, domainerrors.NewUpstreamError(err, "failed to load roles")
	}

	if roles == nil {
		roles = entity.Roles{}
	}

	return roles, nil
}
