package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"token": "",
		},
		"auth": map[string]any{
			"sessionTouchTimeout": "3s",
			"roles": map[string]any{
				"inspector": map[string]any{
					"tokenLifetime":         "12h",
					"deviceBindingRequired": true,
				},
			},
		},
		"rateLimit": map[string]any{
			"keyPrefix": "ratelimit:",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_TOKEN", want: "secretKey.token"},
		{envKey: "AUTH_SESSIONTOUCHTIMEOUT", want: "auth.sessionTouchTimeout"},
		{envKey: "AUTH_ROLES_INSPECTOR_TOKENLIFETIME", want: "auth.roles.inspector.tokenLifetime"},
		{envKey: "AUTH_ROLES_INSPECTOR_DEVICEBINDINGREQUIRED", want: "auth.roles.inspector.deviceBindingRequired"},
		{envKey: "RATELIMIT_KEYPREFIX", want: "rateLimit.keyPrefix"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
