// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"slices"
	"time"
)

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleAdmin is the unrestricted administrative role. Web only, never device bound.
	RoleAdmin Role = "admin"
	// RoleInspector is the restricted field role. Mobile only, bound to exactly one device.
	RoleInspector Role = "inspector"
)

// rolePrecedence orders roles for primary role selection. The restricted role comes
// first so that its policy governs accounts that somehow carry both.
var rolePrecedence = []Role{RoleInspector, RoleAdmin}

// AllRoles returns every known role in precedence order.
func AllRoles() []Role {
	return slices.Clone(rolePrecedence)
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleInspector:
		return true
	default:
		return false
	}
}

// ParseRole converts a string into a Role, rejecting unknown names.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", s)
	}

	return role, nil
}

// Roles is a slice of Role for convenience.
// A nil Roles means the role set was not loaded; an empty non-nil Roles means no roles.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Loaded reports whether the role set has been populated from the directory.
func (rs Roles) Loaded() bool {
	return rs != nil
}

// Primary returns the role whose policy governs the account.
func (rs Roles) Primary() (Role, bool) {
	for _, role := range rolePrecedence {
		if rs.Contains(role) {
			return role, true
		}
	}

	return "", false
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// RolePredicate decides whether a role set satisfies a route requirement.
type RolePredicate struct {
	anyOf Roles
}

// HasRole requires the given role. It panics on an unknown role so that a bad
// route declaration fails at startup rather than at request time.
func HasRole(role Role) RolePredicate {
	return HasAnyRole(role)
}

// HasAnyRole requires at least one of the given roles.
func HasAnyRole(roles ...Role) RolePredicate {
	if len(roles) == 0 {
		panic("role predicate requires at least one role")
	}
	for _, role := range roles {
		if !role.IsValid() {
			panic(fmt.Sprintf("role predicate with unknown role %q", role))
		}
	}

	return RolePredicate{anyOf: slices.Clone(Roles(roles))}
}

// SatisfiedBy evaluates the predicate. The zero predicate is never satisfied.
func (p RolePredicate) SatisfiedBy(rs Roles) bool {
	for _, role := range p.anyOf {
		if rs.Contains(role) {
			return true
		}
	}

	return false
}

// String describes the predicate for logs and error details.
func (p RolePredicate) String() string {
	switch len(p.anyOf) {
	case 0:
		return "none"
	case 1:
		return "role " + p.anyOf[0].String()
	default:
		return fmt.Sprintf("any of roles %v", p.anyOf.ToStrings())
	}
}

// RolePolicy is the per-role session policy.
type RolePolicy struct {
	TokenLifetime         time.Duration
	DeviceBindingRequired bool
	AllowedPlatforms      []Platform
}

// AllowsPlatform checks the platform allow-list. An empty list allows nothing.
func (p RolePolicy) AllowsPlatform(platform Platform) bool {
	return slices.Contains(p.AllowedPlatforms, platform)
}

// RolePolicies maps every role to its policy.
type RolePolicies map[Role]RolePolicy

// For returns the policy for a role.
func (ps RolePolicies) For(role Role) (RolePolicy, bool) {
	policy, ok := ps[role]

	return policy, ok
}

// RequiresDeviceBinding reports whether any role in the set mandates a device binding.
func (ps RolePolicies) RequiresDeviceBinding(rs Roles) bool {
	for _, role := range rs {
		if policy, ok := ps[role]; ok && policy.DeviceBindingRequired {
			return true
		}
	}

	return false
}
