// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"inspection/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the account directory consumed by the auth core.
// Account creation, role assignment and device provisioning belong to other services.
type AccountRepository interface {
	// FindByHandle retrieves an account by its handle using case-sensitive exact match.
	// Roles and the device binding are loaded eagerly.
	FindByHandle(ctx context.Context, handle string) (*entity.Account, error)

	// FindByID retrieves an account by its identity. Roles and the device binding are loaded eagerly.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindRoles loads only the role set of an account.
	FindRoles(ctx context.Context, id uuid.UUID) (entity.Roles, error)

	// RecordSession overwrites the last-session metadata. Last write wins.
	RecordSession(ctx context.Context, id uuid.UUID, meta entity.SessionMeta) error
}
