package middleware

import (
	"log/slog"
	"strings"

	"inspection/config"
	deliverycontext "inspection/internal/delivery/context"
	"inspection/internal/domain/entity"
	domainerrors "inspection/internal/domain/errors"
	"inspection/internal/domain/service"
	"inspection/internal/infra/metrics"
	"inspection/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	HeaderPlatform   = "X-Platform"
	HeaderDeviceInfo = "X-Device-Info"

	bearerPrefix = "bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Sessions usecase.SessionUsecase
	Config   *config.Config
	Logger   *slog.Logger
	Metrics  *metrics.Metrics `optional:"true"`
}

// AuthMiddleware provides session authentication and role authorization.
type AuthMiddleware struct {
	sessions   usecase.SessionUsecase
	cookieName string
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   params.Sessions,
		cookieName: params.Config.Auth.Cookie.Name,
		logger:     params.Logger,
		metrics:    params.Metrics,
	}
}

// Authenticate validates the session token and stores the session in the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, channel := m.locateToken(c)
		req := c.Request()

		session, err := m.sessions.Validate(req.Context(), usecase.SessionInput{
			Token:        token,
			Channel:      channel,
			Evidence:     PlatformEvidence(c),
			DeviceHeader: req.Header.Get(HeaderDeviceInfo),
			Origin:       c.RealIP(),
		})
		if err != nil {
			m.rejected(err)

			return errors.WithStack(err)
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the session roles against predicate.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(predicate entity.RolePredicate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := deliverycontext.SessionFrom(c)
			if !ok || session.Account == nil {
				m.rejected(domainerrors.ErrAuthenticationRequired)

				return domainerrors.ErrAuthenticationRequired
			}

			if !session.Account.Roles.Loaded() {
				roles, err := m.sessions.LoadRoles(c.Request().Context(), session.Account.ID)
				if err != nil {
					return errors.WithStack(err)
				}
				session.Account.Roles = roles
			}

			if !predicate.SatisfiedBy(session.Account.Roles) {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Info("Role check failed",
					slog.Any("account_id", session.Account.ID),
					slog.String("required", predicate.String()),
				)
				m.rejected(domainerrors.ErrInsufficientRole)

				return domainerrors.ErrInsufficientRole
			}

			return next(c)
		}
	}
}

// locateToken prefers the cookie channel and falls back to the bearer header.
func (m *AuthMiddleware) locateToken(c echo.Context) (string, usecase.TokenChannel) {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value, usecase.TokenChannelCookie
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		if token := strings.TrimSpace(header[len(bearerPrefix):]); token != "" {
			return token, usecase.TokenChannelBearer
		}
	}

	return "", usecase.TokenChannelNone
}

func (m *AuthMiddleware) rejected(err error) {
	if m.metrics == nil {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.metrics.AuthRejected(appErr.ErrorCode())
	}
}

// PlatformEvidence collects the headers the platform resolver works from.
func PlatformEvidence(c echo.Context) service.PlatformEvidence {
	return service.PlatformEvidence{
		PlatformHint: c.Request().Header.Get(HeaderPlatform),
		UserAgent:    c.Request().UserAgent(),
	}
}
