// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is an entry of the account directory as seen by the auth core.
// The directory owns it; the auth core only reads it and records last-session metadata.
type Account struct {
	ID            uuid.UUID      // Identity referenced by the token subject.
	Handle        string         // Unique sign-in handle, matched case-sensitively.
	Email         string         // Unique contact address.
	PasswordHash  string         // bcrypt hash. Never logged or serialized.
	Active        bool           // Inactive accounts cannot sign in or hold sessions.
	Roles         Roles          // nil when not loaded.
	DeviceBinding *DeviceBinding // Mandatory for restricted roles, forbidden otherwise.
	LastSession   *SessionMeta   // Most recent accepted sign-in or request.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsDeviceBound reports whether the account carries a device binding.
func (a *Account) IsDeviceBound() bool {
	return a.DeviceBinding != nil && a.DeviceBinding.DeviceID != ""
}

// SessionMeta is the advisory last-session telemetry stored on the account.
type SessionMeta struct {
	At               time.Time
	Origin           string // Client IP address.
	ClientDescriptor string // User-Agent header.
}

// Session is the typed result of a successful session validation.
type Session struct {
	Account   *Account
	Platform  Platform
	IssuedAt  time.Time
	ExpiresAt time.Time
	// TokenRoles is the role snapshot embedded at issuance; authorization uses Account.Roles.
	TokenRoles Roles
}
