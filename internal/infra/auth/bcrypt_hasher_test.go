package auth

import (
	"strings"
	"testing"

	"inspection/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func lowCostConfig() *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(lowCostConfig())

	secret := "field-secret-42"
	hash, err := hasher.Hash(secret)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, secret, hash)

	// Salted: the same secret never hashes to the same value twice.
	again, err := hasher.Hash(secret)
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)

	assert.True(t, hasher.Check(secret, hash))
	assert.True(t, hasher.Check(secret, again))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(lowCostConfig())
	secret := "field-secret-42"

	hash, err := hasher.Hash(secret)
	require.NoError(t, err)

	assert.True(t, hasher.Check(secret, hash))
	assert.False(t, hasher.Check("field-secret-43", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(secret, "invalid_hash"))
	assert.False(t, hasher.Check(secret, ""))
}

func TestBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "configured cost", cfg: lowCostConfig(), want: bcrypt.MinCost},
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
		{name: "zero cost", cfg: &config.Config{Auth: &config.AuthConfig{}}, want: bcrypt.DefaultCost},
		{name: "cost above max", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}

	hash, err := NewBcryptHasher(lowCostConfig()).Hash("secret")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_TooLongSecret(t *testing.T) {
	hasher := NewBcryptHasher(lowCostConfig())

	_, err := hasher.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
}
