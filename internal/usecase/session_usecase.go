package usecase

import (
	"context"

	"posterstore/internal/domain/entity"
)

// LoginInput carries the login form fields.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	AsAdmin  bool   `json:"asAdmin"`
}

// LoginOutput is the established session plus its bearer token.
type LoginOutput struct {
	Role  entity.Role `json:"role"`
	Token string      `json:"token"`
}

// SessionUsecase defines the interface for the demo login session.
type SessionUsecase interface {
	// Login establishes a session. Any non-empty credentials are accepted;
	// AsAdmin selects the admin role.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout clears the stored session.
	Logout(ctx context.Context) error

	// Current returns the stored session state.
	Current(ctx context.Context) (*entity.Session, error)
}
