package auth

import (
	"inspection/config"
	"inspection/internal/domain/entity"

	"github.com/pkg/errors"
)

// NewRolePolicies turns the configured role policies into the domain table.
// Every known role must have a policy and every policy must name a known role.
func NewRolePolicies(cfg *config.Config) (entity.RolePolicies, error) {
	if cfg.Auth == nil {
		return nil, errors.New("auth config is missing")
	}

	policies := make(entity.RolePolicies, len(cfg.Auth.Roles))
	for name, raw := range cfg.Auth.Roles {
		role, err := entity.ParseRole(name)
		if err != nil {
			return nil, errors.Wrap(err, "auth.roles")
		}
		if raw.TokenLifetime <= 0 {
			return nil, errors.Errorf("auth.roles.%s: token lifetime must be positive", name)
		}

		platforms := make([]entity.Platform, 0, len(raw.AllowedPlatforms))
		for _, tag := range raw.AllowedPlatforms {
			platform, ok := entity.ParsePlatform(tag)
			if !ok {
				return nil, errors.Errorf("auth.roles.%s: unknown platform %q", name, tag)
			}
			platforms = append(platforms, platform)
		}

		policies[role] = entity.RolePolicy{
			TokenLifetime:         raw.TokenLifetime,
			DeviceBindingRequired: raw.DeviceBindingRequired,
			AllowedPlatforms:      platforms,
		}
	}

	for _, role := range entity.AllRoles() {
		if _, ok := policies[role]; !ok {
			return nil, errors.Errorf("auth.roles.%s: policy is missing", role)
		}
	}

	return policies, nil
}
