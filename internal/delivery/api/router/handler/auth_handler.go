// Package handler contains the HTTP handlers of the API delivery.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"inspection/config"
	"inspection/internal/delivery/api/middleware"
	"inspection/internal/delivery/api/response"
	"inspection/internal/domain/entity"
	"inspection/internal/domain/service"
	"inspection/internal/infra/metrics"
	"inspection/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC   usecase.AuthUsecase
	Resolver service.PlatformResolver
	Config   *config.Config
	Logger   *slog.Logger
	Metrics  *metrics.Metrics `optional:"true"`
}

// AuthHandler serves sign-in and sign-out.
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	resolver     service.PlatformResolver
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:       params.AuthUC,
		resolver:     params.Resolver,
		cookieName:   params.Config.Auth.Cookie.Name,
		cookieSecure: params.Config.Auth.Cookie.Secure || params.Config.IsProduction(),
		logger:       params.Logger,
		metrics:      params.Metrics,
	}
}

// LoginRequest is the sign-in body. Device is validated by the device binding rules.
type LoginRequest struct {
	Handle string                   `json:"handle" validate:"required,max=255"`
	Secret string                   `json:"secret" validate:"required,max=72"`
	Device *entity.DeviceDescriptor `json:"device,omitempty" validate:"-"`
}

// AccountView is the public part of an account.
type AccountView struct {
	ID     string   `json:"id"`
	Handle string   `json:"handle"`
	Roles  []string `json:"roles"`
}

// LoginResponse carries the token only on the mobile channel.
type LoginResponse struct {
	Token     string      `json:"token,omitempty"`
	TokenType string      `json:"tokenType,omitempty"`
	ExpiresIn int64       `json:"expiresIn"`
	ExpiresAt time.Time   `json:"expiresAt"`
	Platform  string      `json:"platform"`
	Account   AccountView `json:"account"`
}

// Login handles the sign-in request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	evidence := middleware.PlatformEvidence(c)
	output, err := h.authUC.SignIn(c.Request().Context(), usecase.SignInInput{
		Handle:   req.Handle,
		Secret:   req.Secret,
		Device:   req.Device,
		Evidence: evidence,
		Origin:   c.RealIP(),
	})
	if err != nil {
		h.countSignIn(h.resolver.Resolve(evidence), "failure")

		return errors.WithStack(err)
	}

	token := output.Token
	h.countSignIn(token.Platform, "success")

	body := LoginResponse{
		ExpiresIn: int64(token.Lifetime / time.Second),
		ExpiresAt: token.ExpiresAt,
		Platform:  token.Platform.String(),
		Account:   newAccountView(output.Account),
	}

	if token.Platform.IsMobile() {
		body.Token = token.Value
		body.TokenType = "Bearer"
	} else {
		c.SetCookie(h.sessionCookie(token.Value, token.Lifetime))
	}

	return response.Success(c, http.StatusOK, body)
}

// Logout clears the cookie on the web channel. Mobile tokens are stateless and
// simply discarded by the client.
func (h *AuthHandler) Logout(c echo.Context) error {
	_, cookieErr := c.Cookie(h.cookieName)
	if cookieErr == nil || h.resolver.Resolve(middleware.PlatformEvidence(c)) == entity.PlatformWeb {
		c.SetCookie(h.clearedCookie())
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"})
}

func (h *AuthHandler) sessionCookie(value string, lifetime time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(lifetime / time.Second),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	}
}

func (h *AuthHandler) clearedCookie() *http.Cookie {
	cookie := h.sessionCookie("", 0)
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)

	return cookie
}

func (h *AuthHandler) countSignIn(platform entity.Platform, outcome string) {
	if h.metrics != nil {
		h.metrics.SignIn(platform.String(), outcome)
	}
}

func newAccountView(account *entity.Account) AccountView {
	return AccountView{
		ID:     account.ID.String(),
		Handle: account.Handle,
		Roles:  account.Roles.ToStrings(),
	}
}
