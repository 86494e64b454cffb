package impl

import (
	"io"
	"log/slog"
	"time"

	"inspection/config"
	"inspection/internal/domain/entity"

	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPolicies() entity.RolePolicies {
	return entity.RolePolicies{
		entity.RoleAdmin: {
			TokenLifetime:    8 * time.Hour,
			AllowedPlatforms: []entity.Platform{entity.PlatformWeb},
		},
		entity.RoleInspector: {
			TokenLifetime:         12 * time.Hour,
			DeviceBindingRequired: true,
			AllowedPlatforms:      []entity.Platform{entity.PlatformAndroid, entity.PlatformIOS},
		},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Token: config.TokenConfig{
				MinLength: 32,
				MaxLength: 4096,
			},
			SessionTouchTimeout: time.Second,
		},
	}
}

func inspectorAccount() *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		Handle:       "insp01",
		PasswordHash: "hash-insp01",
		Active:       true,
		Roles:        entity.Roles{entity.RoleInspector},
		DeviceBinding: &entity.DeviceBinding{
			DeviceID: "DEV-123",
			Platform: entity.PlatformAndroid,
		},
	}
}

func adminAccount() *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		Handle:       "root",
		PasswordHash: "hash-root",
		Active:       true,
		Roles:        entity.Roles{entity.RoleAdmin},
	}
}
