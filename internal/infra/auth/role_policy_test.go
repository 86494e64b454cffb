package auth

import (
	"testing"
	"time"

	"inspection/config"
	"inspection/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configWithRoles(roles map[string]config.RolePolicyConfig) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{Roles: roles}}
}

func TestNewRolePolicies_Defaults(t *testing.T) {
	policies, err := NewRolePolicies(configWithRoles(config.DefaultRolePolicies()))
	require.NoError(t, err)

	admin, ok := policies.For(entity.RoleAdmin)
	require.True(t, ok)
	assert.Equal(t, 8*time.Hour, admin.TokenLifetime)
	assert.False(t, admin.DeviceBindingRequired)
	assert.True(t, admin.AllowsPlatform(entity.PlatformWeb))
	assert.False(t, admin.AllowsPlatform(entity.PlatformAndroid))

	inspector, ok := policies.For(entity.RoleInspector)
	require.True(t, ok)
	assert.True(t, inspector.DeviceBindingRequired)
	assert.True(t, inspector.AllowsPlatform(entity.PlatformIOS))
	assert.False(t, inspector.AllowsPlatform(entity.PlatformWeb))

	assert.True(t, policies.RequiresDeviceBinding(entity.Roles{entity.RoleAdmin, entity.RoleInspector}))
	assert.False(t, policies.RequiresDeviceBinding(entity.Roles{entity.RoleAdmin}))
}

func TestNewRolePolicies_Errors(t *testing.T) {
	valid := config.DefaultRolePolicies()

	tests := []struct {
		name    string
		roles   map[string]config.RolePolicyConfig
		wantErr string
	}{
		{
			name: "unknown role",
			roles: map[string]config.RolePolicyConfig{
				"admin":     valid["admin"],
				"inspector": valid["inspector"],
				"driver":    {TokenLifetime: time.Hour},
			},
			wantErr: "unknown role",
		},
		{
			name: "unknown platform",
			roles: map[string]config.RolePolicyConfig{
				"admin":     {TokenLifetime: time.Hour, AllowedPlatforms: []string{"desktop"}},
				"inspector": valid["inspector"],
			},
			wantErr: "unknown platform",
		},
		{
			name: "missing role",
			roles: map[string]config.RolePolicyConfig{
				"admin": valid["admin"],
			},
			wantErr: "auth.roles.inspector: policy is missing",
		},
		{
			name: "zero lifetime",
			roles: map[string]config.RolePolicyConfig{
				"admin":     {AllowedPlatforms: []string{"web"}},
				"inspector": valid["inspector"],
			},
			wantErr: "token lifetime must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRolePolicies(configWithRoles(tt.roles))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
