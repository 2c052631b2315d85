package impl

import (
	"context"
	"testing"

	"posterstore/config"
	"posterstore/internal/domain/entity"
	domainerrors "posterstore/internal/domain/errors"
	"posterstore/internal/infra/auth"
	"posterstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSessionService(t *testing.T) (usecase.SessionUsecase, testRepos) {
	repos := newTestRepos(t)
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	svc := NewSessionService(repos.sessions, tokens, repos.logger)

	return svc, repos
}

func TestSessionService_Login_RejectsEmptyCredentials(t *testing.T) {
	svc, _ := createTestSessionService(t)
	ctx := context.Background()

	for name, input := range map[string]*usecase.LoginInput{
		"no email":    {Password: "hunter2"},
		"no password": {Email: "ada@example.com"},
	} {
		_, err := svc.Login(ctx, input)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials), name)
	}

	session, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.False(t, session.LoggedIn)
}

func TestSessionService_Login_RoleSelection(t *testing.T) {
	svc, _ := createTestSessionService(t)
	ctx := context.Background()

	out, err := svc.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role)
	assert.NotEmpty(t, out.Token)

	// Any credentials with the admin flag produce an admin session.
	out, err = svc.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "hunter2", AsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	session, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.True(t, session.LoggedIn)
	assert.Equal(t, entity.RoleAdmin, session.Role)
}

func TestSessionService_Logout(t *testing.T) {
	svc, _ := createTestSessionService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "hunter2"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	session, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.False(t, session.LoggedIn)

	// Logging out while logged out still succeeds.
	require.NoError(t, svc.Logout(ctx))
}
