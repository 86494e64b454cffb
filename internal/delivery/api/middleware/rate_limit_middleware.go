package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	deliverycontext "inspection/internal/delivery/context"
	domainerrors "inspection/internal/domain/errors"
	"inspection/internal/domain/service"
	"inspection/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const anonymousIdentity = "anon"

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Limiter service.RateLimiter
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// RateLimitMiddleware applies a declared tier to a route.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: params.Limiter,
		logger:  params.Logger,
		metrics: params.Metrics,
	}
}

// Tier returns a middleware governed by the given tier. Sign-in attempts that
// name a handle are counted per handle alone, whatever address they come from.
// Everything else is keyed by the session account, or anonymous, plus the client IP.
func (m *RateLimitMiddleware) Tier(tier service.RateTier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, err := m.key(c, tier)
			if err != nil {
				return err
			}

			allowed, err := m.limiter.Allow(c.Request().Context(), tier, key)
			if err != nil {
				return domainerrors.NewUpstreamError(err, "rate limit counter unavailable")
			}

			if !allowed {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Info("Rate limited",
					slog.String("tier", tier.String()),
					slog.String("path", c.Path()),
				)
				if m.metrics != nil {
					m.metrics.RateLimited(tier.String())
				}

				return domainerrors.ErrRateLimited
			}

			return next(c)
		}
	}
}

func (m *RateLimitMiddleware) key(c echo.Context, tier service.RateTier) (string, error) {
	if session, ok := deliverycontext.SessionFrom(c); ok && session.Account != nil {
		return "account:" + session.Account.ID.String() + "|" + c.RealIP(), nil
	}

	if tier == service.RateTierLogin {
		handle, err := peekHandle(c)
		if err != nil {
			return "", err
		}
		if handle != "" {
			return "handle:" + handle, nil
		}
	}

	return anonymousIdentity + "|" + c.RealIP(), nil
}

// peekHandle reads the sign-in handle from a JSON body and restores the body
// for the handler. A body that cannot be read in full is reported as is; a body
// that is not a JSON object with a handle yields "".
func peekHandle(c echo.Context) (string, error) {
	req := c.Request()
	if req.Body == nil || !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return "", nil
	}

	body, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		Handle string `json:"handle"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", nil
	}

	return payload.Handle, nil
}
