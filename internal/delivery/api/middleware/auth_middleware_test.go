package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"inspection/config"
	deliverycontext "inspection/internal/delivery/context"
	"inspection/internal/domain/entity"
	domainerrors "inspection/internal/domain/errors"
	mockUsecase "inspection/internal/mocks/usecase"
	"inspection/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthMiddleware(sessions usecase.SessionUsecase) *AuthMiddleware {
	return NewAuthMiddleware(AuthMiddlewareParams{
		Sessions: sessions,
		Config:   &config.Config{Auth: &config.AuthConfig{Cookie: config.CookieConfig{Name: "auth_token"}}},
		Logger:   discardLogger(),
	})
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthenticate_TokenLocation(t *testing.T) {
	tests := []struct {
		name        string
		cookie      string
		header      string
		wantToken   string
		wantChannel usecase.TokenChannel
	}{
		{"cookie only", "cookie-token", "", "cookie-token", usecase.TokenChannelCookie},
		{"cookie preferred over bearer", "cookie-token", "Bearer header-token", "cookie-token", usecase.TokenChannelCookie},
		{"bearer only", "", "Bearer header-token", "header-token", usecase.TokenChannelBearer},
		{"bearer scheme is case-insensitive", "", "bearer header-token", "header-token", usecase.TokenChannelBearer},
		{"basic scheme ignored", "", "Basic cm9vdA==", "", usecase.TokenChannelNone},
		{"bare bearer", "", "Bearer ", "", usecase.TokenChannelNone},
		{"nothing", "", "", "", usecase.TokenChannelNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := mockUsecase.NewMockSessionUsecase(t)
			m := newAuthMiddleware(sessions)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "auth_token", Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			req.Header.Set(HeaderPlatform, "android")
			req.Header.Set(HeaderDeviceInfo, `{"deviceId":"DEV-123"}`)
			c := echo.New().NewContext(req, httptest.NewRecorder())

			sessions.EXPECT().
				Validate(mock.Anything, mock.AnythingOfType("usecase.SessionInput")).
				Run(func(_ context.Context, input usecase.SessionInput) {
					assert.Equal(t, tt.wantToken, input.Token)
					assert.Equal(t, tt.wantChannel, input.Channel)
					assert.Equal(t, "android", input.Evidence.PlatformHint)
					assert.Equal(t, `{"deviceId":"DEV-123"}`, input.DeviceHeader)
					assert.Equal(t, "192.0.2.1", input.Origin)
				}).
				Return(nil, domainerrors.ErrAuthenticationRequired)

			err := m.Authenticate(okHandler)(c)

			assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
		})
	}
}

func TestAuthenticate_StoresSession(t *testing.T) {
	sessions := mockUsecase.NewMockSessionUsecase(t)
	m := newAuthMiddleware(sessions)
	session := &entity.Session{Account: &entity.Account{ID: uuid.New()}, Platform: entity.PlatformWeb}

	sessions.EXPECT().Validate(mock.Anything, mock.Anything).Return(session, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "token"})
	c := echo.New().NewContext(req, httptest.NewRecorder())

	var seen *entity.Session
	err := m.Authenticate(func(c echo.Context) error {
		seen, _ = deliverycontext.SessionFrom(c)

		return nil
	})(c)

	require.NoError(t, err)
	assert.Same(t, session, seen)
}

func contextWithSession(session *entity.Session) echo.Context {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if session != nil {
		deliverycontext.SetSession(c, session)
	}

	return c
}

func TestRequireRole(t *testing.T) {
	adminOnly := entity.HasRole(entity.RoleAdmin)
	anyRole := entity.HasAnyRole(entity.RoleInspector, entity.RoleAdmin)

	tests := []struct {
		name      string
		predicate entity.RolePredicate
		roles     entity.Roles
		wantErr   error
	}{
		{"admin on admin route", adminOnly, entity.Roles{entity.RoleAdmin}, nil},
		{"inspector on admin route", adminOnly, entity.Roles{entity.RoleInspector}, domainerrors.ErrInsufficientRole},
		{"inspector on shared route", anyRole, entity.Roles{entity.RoleInspector}, nil},
		{"no roles", anyRole, entity.Roles{}, domainerrors.ErrInsufficientRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newAuthMiddleware(mockUsecase.NewMockSessionUsecase(t))
			c := contextWithSession(&entity.Session{Account: &entity.Account{ID: uuid.New(), Roles: tt.roles}})

			err := m.RequireRole(tt.predicate)(okHandler)(c)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequireRole_ReloadsUnloadedRoles(t *testing.T) {
	sessions := mockUsecase.NewMockSessionUsecase(t)
	m := newAuthMiddleware(sessions)
	account := &entity.Account{ID: uuid.New()}
	c := contextWithSession(&entity.Session{Account: account})

	sessions.EXPECT().LoadRoles(mock.Anything, account.ID).Return(entity.Roles{entity.RoleAdmin}, nil).Once()

	err := m.RequireRole(entity.HasRole(entity.RoleAdmin))(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleAdmin}, account.Roles)
}

func TestRequireRole_ReloadFailureFailsClosed(t *testing.T) {
	sessions := mockUsecase.NewMockSessionUsecase(t)
	m := newAuthMiddleware(sessions)
	account := &entity.Account{ID: uuid.New()}
	c := contextWithSession(&entity.Session{Account: account})

	sessions.EXPECT().
		LoadRoles(mock.Anything, account.ID).
		Return(nil, domainerrors.NewUpstreamError(errors.New("timeout"), "failed to load roles"))

	err := m.RequireRole(entity.HasRole(entity.RoleAdmin))(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailure)
}

func TestRequireRole_WithoutSession(t *testing.T) {
	m := newAuthMiddleware(mockUsecase.NewMockSessionUsecase(t))

	err := m.RequireRole(entity.HasRole(entity.RoleAdmin))(okHandler)(contextWithSession(nil))

	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}
