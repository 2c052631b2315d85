// Package service defines interfaces for domain-level services implemented in infra.
package service

import (
	"time"

	"posterstore/internal/domain/entity"
)

// TokenService defines the interface for generating and validating session
// tokens. The token only carries the declared role; it is a demo stub, not an
// access-control mechanism.
type TokenService interface {
	// GenerateToken creates a signed token carrying the declared role.
	GenerateToken(role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string and returns the role it carries.
	ValidateToken(tokenString string) (entity.Role, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
