package handler

import (
	"net/http"
	"time"

	"inspection/internal/delivery/api/response"
	deliverycontext "inspection/internal/delivery/context"
	domainerrors "inspection/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SessionHandler exposes the session resolved by the auth middleware.
type SessionHandler struct{}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// SessionView describes the current session.
type SessionView struct {
	Account   AccountView `json:"account"`
	Platform  string      `json:"platform"`
	IssuedAt  time.Time   `json:"issuedAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// Current returns the session of the caller. It must be mounted behind Authenticate.
func (h *SessionHandler) Current(c echo.Context) error {
	session, ok := deliverycontext.SessionFrom(c)
	if !ok {
		return domainerrors.ErrAuthenticationRequired
	}

	return response.Success(c, http.StatusOK, SessionView{
		Account:   newAccountView(session.Account),
		Platform:  session.Platform.String(),
		IssuedAt:  session.IssuedAt,
		ExpiresAt: session.ExpiresAt,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
