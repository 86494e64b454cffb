package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "inspection/internal/delivery/context"
	"inspection/internal/domain/entity"
	domainerrors "inspection/internal/domain/errors"
	"inspection/internal/domain/service"
	"inspection/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Credentials usecase.CredentialValidator
	Devices     usecase.DeviceBindingValidator
	Resolver    service.PlatformResolver
	Tokens      service.TokenService
	Policies    entity.RolePolicies
	Recorder    usecase.SessionRecorder
	Logger      *slog.Logger
}

// authService implements the AuthUsecase interface.
type authService struct {
	credentials usecase.CredentialValidator
	devices     usecase.DeviceBindingValidator
	resolver    service.PlatformResolver
	tokens      service.TokenService
	policies    entity.RolePolicies
	recorder    usecase.SessionRecorder
	logger      *slog.Logger
	now         func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		credentials: params.Credentials,
		devices:     params.Devices,
		resolver:    params.Resolver,
		tokens:      params.Tokens,
		policies:    params.Policies,
		recorder:    params.Recorder,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn runs credentials, device binding, platform policy and token issuance in that order.
func (srv *authService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	srv.log(ctx).Debug("Starting sign-in", slog.String("handle", input.Handle))

	// 1. Credentials
	account, err := srv.credentials.Validate(ctx, input.Handle, input.Secret)
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.String("handle", input.Handle), slog.Any("error", err))

		return nil, err
	}

	// 2. Device binding, against the platform the request resolves to
	platform := srv.resolver.Resolve(input.Evidence)
	if err := srv.devices.CheckSignIn(account, input.Device, platform); err != nil {
		srv.log(ctx).Warn("Sign-in device check failed",
			slog.Any("account_id", account.ID),
			slog.String("platform", platform.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	// 3. Platform policy of the primary role
	primary, ok := account.Roles.Primary()
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInsufficientRole, "account holds no known role")
	}

	policy, ok := srv.policies.For(primary)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrInternalError, "no policy for role %s", primary)
	}

	if !policy.AllowsPlatform(platform) {
		srv.log(ctx).Warn("Sign-in from disallowed platform",
			slog.Any("account_id", account.ID),
			slog.String("role", primary.String()),
			slog.String("platform", platform.String()),
		)

		return nil, domainerrors.ErrPlatformNotAllowed
	}

	// 4. Token
	token, err := srv.tokens.Issue(account, platform)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.recorder.Record(ctx, account.ID, entity.SessionMeta{
		At:               srv.now(),
		Origin:           input.Origin,
		ClientDescriptor: input.Evidence.UserAgent,
	})

	srv.log(ctx).Info("Signed in",
		slog.Any("account_id", account.ID),
		slog.String("platform", platform.String()),
		slog.Time("expires_at", token.ExpiresAt),
	)

	return &usecase.SignInOutput{
		Account: account,
		Token:   token,
	}, nil
}
