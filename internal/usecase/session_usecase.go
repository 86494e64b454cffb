package usecase

import (
	"context"

	"inspection/internal/domain/entity"
	"inspection/internal/domain/service"

	"github.com/google/uuid"
)

// TokenChannel is where a session token was found on the request.
type TokenChannel string

const (
	TokenChannelNone   TokenChannel = ""
	TokenChannelCookie TokenChannel = "cookie"
	TokenChannelBearer TokenChannel = "bearer"
)

// SessionInput is the request evidence the session validator works from.
type SessionInput struct {
	Token        string
	Channel      TokenChannel
	Evidence     service.PlatformEvidence
	DeviceHeader string // raw X-Device-Info value
	Origin       string
}

// SessionUsecase is the inbound-request gate.
type SessionUsecase interface {
	// Validate runs the full session check and returns the accepted session.
	Validate(ctx context.Context, input SessionInput) (*entity.Session, error)

	// LoadRoles fetches the current role set of an account from the directory.
	LoadRoles(ctx context.Context, accountID uuid.UUID) (entity.Roles, error)
}

// SessionRecorder writes last-session metadata without blocking the caller.
type SessionRecorder interface {
	Record(ctx context.Context, id uuid.UUID, meta entity.SessionMeta)
}

// DeviceBindingValidator enforces the one-device rule of restricted roles.
type DeviceBindingValidator interface {
	// CheckSignIn validates the descriptor supplied in the sign-in body.
	CheckSignIn(account *entity.Account, supplied *entity.DeviceDescriptor, platform entity.Platform) error

	// CheckRequest validates the X-Device-Info header of an authenticated request.
	CheckRequest(account *entity.Account, header string, platform entity.Platform) error
}
