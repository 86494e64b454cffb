package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"inspection/internal/domain/entity"
	domainerrors "inspection/internal/domain/errors"
	"inspection/internal/domain/repository"
	"inspection/internal/domain/service"
	"inspection/internal/infra/auth"
	mockRepo "inspection/internal/mocks/repository"
	mockService "inspection/internal/mocks/service"
	mockUsecase "inspection/internal/mocks/usecase"
	"inspection/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testToken = strings.Repeat("t", 64)
	fixedNow  = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
)

type sessionFixture struct {
	srv      *sessionService
	accounts *mockRepo.MockAccountRepository
	tokens   *mockService.MockTokenService
	recorder *mockUsecase.MockSessionRecorder
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		accounts: mockRepo.NewMockAccountRepository(t),
		tokens:   mockService.NewMockTokenService(t),
		recorder: mockUsecase.NewMockSessionRecorder(t),
	}

	f.srv = NewSessionService(SessionServiceParams{
		Accounts: f.accounts,
		Tokens:   f.tokens,
		Resolver: auth.NewPlatformResolver(),
		Devices:  NewDeviceBindingValidator(testPolicies()),
		Recorder: f.recorder,
		Config:   testConfig(),
		Logger:   discardLogger(),
	}).(*sessionService)
	f.srv.now = func() time.Time { return fixedNow }

	return f
}

func claimsFor(account *entity.Account, platform entity.Platform) *service.TokenClaims {
	return &service.TokenClaims{
		AccountID: account.ID,
		Roles:     account.Roles,
		Platform:  platform,
		IssuedAt:  fixedNow.Add(-time.Hour),
		ExpiresAt: fixedNow.Add(time.Hour),
	}
}

func mobileInput(header string) usecase.SessionInput {
	return usecase.SessionInput{
		Token:        testToken,
		Channel:      usecase.TokenChannelBearer,
		Evidence:     service.PlatformEvidence{UserAgent: "okhttp/4.12.0"},
		DeviceHeader: header,
		Origin:       "10.0.0.7",
	}
}

func TestSessionService_Validate_InspectorAccepted(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	account := inspectorAccount()

	f.tokens.EXPECT().Verify(testToken).Return(claimsFor(account, entity.PlatformAndroid), nil)
	f.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	f.recorder.EXPECT().Record(ctx, account.ID, entity.SessionMeta{
		At:               fixedNow,
		Origin:           "10.0.0.7",
		ClientDescriptor: "okhttp/4.12.0",
	}).Return()

	session, err := f.srv.Validate(ctx, mobileInput(`{"deviceId":"DEV-123","platform":"android"}`))

	require.NoError(t, err)
	assert.Same(t, account, session.Account)
	assert.Equal(t, entity.PlatformAndroid, session.Platform)
	assert.Equal(t, fixedNow.Add(time.Hour), session.ExpiresAt)
	assert.Equal(t, entity.Roles{entity.RoleInspector}, session.TokenRoles)
}

func TestSessionService_Validate_AdminCookieAccepted(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	account := adminAccount()

	f.tokens.EXPECT().Verify(testToken).Return(claimsFor(account, entity.PlatformWeb), nil)
	f.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	f.recorder.EXPECT().Record(ctx, account.ID, mock.AnythingOfType("entity.SessionMeta")).Return()

	session, err := f.srv.Validate(ctx, usecase.SessionInput{
		Token:    testToken,
		Channel:  usecase.TokenChannelCookie,
		Evidence: service.PlatformEvidence{UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PlatformWeb, session.Platform)
}

func TestSessionService_Validate_NoToken(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.srv.Validate(context.Background(), usecase.SessionInput{})

	assert.Same(t, domainerrors.ErrAuthenticationRequired, err)
}

func TestSessionService_Validate_TokenLengthBand(t *testing.T) {
	f := newSessionFixture(t)

	for _, token := range []string{"short", strings.Repeat("x", 4097)} {
		input := mobileInput("")
		input.Token = token

		_, err := f.srv.Validate(context.Background(), input)

		assert.Same(t, domainerrors.ErrTokenMalformed, err)
	}
}

func TestSessionService_Validate_VerifyFailurePropagates(t *testing.T) {
	f := newSessionFixture(t)

	f.tokens.EXPECT().Verify(testToken).Return(nil, domainerrors.ErrTokenExpired)

	_, err := f.srv.Validate(context.Background(), mobileInput(""))

	assert.Same(t, domainerrors.ErrTokenExpired, err)
}

func TestSessionService_Validate_PlatformMismatch(t *testing.T) {
	f := newSessionFixture(t)
	account := inspectorAccount()

	f.tokens.EXPECT().Verify(testToken).Return(claimsFor(account, entity.PlatformAndroid), nil)

	input := mobileInput(`{"deviceId":"DEV-123"}`)
	input.Evidence.PlatformHint = "ios"

	_, err := f.srv.Validate(context.Background(), input)

	assert.Same(t, domainerrors.ErrPlatformMismatch, err)
}

func TestSessionService_Validate_TokenForOtherPlatformThanBinding(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	account := inspectorAccount()

	f.tokens.EXPECT().Verify(testToken).Return(claimsFor(account, entity.PlatformIOS), nil)
	f.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	input := mobileInput(`{"deviceId":"DEV-123"}`)
	input.Evidence = service.PlatformEvidence{UserAgent: "MyApp/1.0 (iPhone; iOS 17.0)"}

	_, err := f.srv.Validate(ctx, input)

	assert.Same(t, domainerrors.ErrDeviceMismatch, err)
}

func TestSessionService_Validate_MobileTokenReplayedOnWeb(t *testing.T) {
	f := newSessionFixture(t)
	account := inspectorAccount()

	f.tokens.EXPECT().Verify(testToken).Return(claimsFor(account, entity.PlatformAndroid), nil)

	_, err := f.srv.Validate(context.Background(), usecase.SessionInput{
		Token:    testToken,
		Channel:  usecase.TokenChannelCookie,
		Evidence: service.PlatformEvidence{UserAgent: "Mozilla/5.0 (X11; Linux x86_64)"},
	})

	assert.Same(t, domainerrors.ErrPlatformMismatch, err)
}

func TestSessionService_Validate_AccountStates(t *testing.T) {
	account := inspectorAccount()
	inactive := inspectorAccount()
	inactive.ID = account.ID
	inactive.Active = false

	tests := []struct {
		name      string
		found     *entity.Account
		findErr   error
		assertErr func(t *testing.T, err error)
	}{
		{
			name:    "account gone",
			findErr: repository.ErrAccountNotFound,
			assertErr: func(t *testing.T, err error) {
				assert.Same(t, domainerrors.ErrAuthenticationRequired, err)
			},
		},
		{
			name:  "account inactive",
			found: inactive,
			assertErr: func(t *testing.T, err error) {
				assert.Same(t, domainerrors.ErrUserInactive, err)
			},
		},
		{
			name:    "directory down",
			findErr: errors.New("dial tcp: i/o timeout"),
			assertErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailure)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			ctx := context.Background()

			f.tokens.EXPECT().Verify(testToken).Return(claimsFor(account, entity.PlatformAndroid), nil)
			f.accounts.EXPECT().FindByID(ctx, account.ID).Return(tt.found, tt.findErr)

			_, err := f.srv.Validate(ctx, mobileInput(`{"deviceId":"DEV-123"}`))

			tt.assertErr(t, err)
		})
	}
}

func TestSessionService_Validate_DeviceMismatch(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	account := inspectorAccount()

	f.tokens.EXPECT().Verify(testToken).Return(claimsFor(account, entity.PlatformAndroid), nil)
	f.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	_, err := f.srv.Validate(ctx, mobileInput(`{"deviceId":"DEV-999","platform":"android"}`))

	assert.Same(t, domainerrors.ErrDeviceMismatch, err)
}

func TestSessionService_Validate_MalformedDeviceHeader(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	account := inspectorAccount()

	f.tokens.EXPECT().Verify(testToken).Return(claimsFor(account, entity.PlatformAndroid), nil)
	f.accounts.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	_, err := f.srv.Validate(ctx, mobileInput("DEV-123"))

	assert.Same(t, domainerrors.ErrDeviceInfoMalformed, err)
}

func TestSessionService_LoadRoles(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.accounts.EXPECT().FindRoles(ctx, id).Return(entity.Roles{entity.RoleAdmin}, nil).Once()

	roles, err := f.srv.LoadRoles(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleAdmin}, roles)
}

func TestSessionService_LoadRoles_EmptyIsLoaded(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.accounts.EXPECT().FindRoles(ctx, id).Return(nil, nil)

	roles, err := f.srv.LoadRoles(ctx, id)

	require.NoError(t, err)
	assert.True(t, roles.Loaded())
	assert.Empty(t, roles)
}

func TestSessionService_LoadRoles_DirectoryDown(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.accounts.EXPECT().FindRoles(ctx, id).Return(nil, errors.New("pool exhausted"))

	_, err := f.srv.LoadRoles(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailure)
}
