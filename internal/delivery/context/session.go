package context

import (
	"context"

	"inspection/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// WithSession returns a new context carrying the validated session.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, keySession, session)
}

// GetSession returns the validated session, if the request passed the session validator.
func GetSession(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(keySession).(*entity.Session)

	return session, ok && session != nil
}

// SetSession attaches the session to the request context of c.
func SetSession(c echo.Context, session *entity.Session) {
	c.SetRequest(c.Request().WithContext(WithSession(c.Request().Context(), session)))
}

// SessionFrom is GetSession over the request context of c.
func SessionFrom(c echo.Context) (*entity.Session, bool) {
	return GetSession(c.Request().Context())
}
