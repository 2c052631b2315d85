package impl

import (
	"context"
	"log/slog"

	"posterstore/internal/domain/entity"
	domainerrors "posterstore/internal/domain/errors"
	"posterstore/internal/domain/repository"
	"posterstore/internal/domain/service"
	"posterstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface. Credentials are a
// demo stub: any non-empty email and password pair is accepted and the
// admin checkbox alone decides the role.
type sessionService struct {
	fx.In

	sessionRepo repository.SessionRepository
	tokens      service.TokenService
	logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo: sessionRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

// Login establishes a session for any non-empty credentials.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	role := entity.RoleUser
	if input.AsAdmin {
		role = entity.RoleAdmin
	}

	if err := srv.sessionRepo.SaveRole(ctx, role); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	token, err := srv.tokens.GenerateToken(role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.logger.Info("User logged in", "role", role)

	return &usecase.LoginOutput{Role: role, Token: token}, nil
}

// Logout clears the stored session. Logging out while not logged in succeeds.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.sessionRepo.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	srv.logger.Info("User logged out")

	return nil
}

// Current returns the stored session state.
func (srv *sessionService) Current(ctx context.Context) (*entity.Session, error) {
	role, err := srv.sessionRepo.GetRole(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return &entity.Session{LoggedIn: false}, nil
		}

		return nil, errors.Wrap(err, "failed to get session")
	}

	return &entity.Session{LoggedIn: true, Role: role}, nil
}
