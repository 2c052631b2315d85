package auth

import (
	"testing"

	"posterstore/config"
	"posterstore/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestService(t, "test-secret")

	for _, role := range []entity.Role{entity.RoleUser, entity.RoleAdmin} {
		token, err := svc.GenerateToken(role)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		parsed, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, role, parsed)
	}
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := newTestService(t, "secret-a").GenerateToken(entity.RoleAdmin)
	require.NoError(t, err)

	_, err = newTestService(t, "secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestService(t, "test-secret")

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
