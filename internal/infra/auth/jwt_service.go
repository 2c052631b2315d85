// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"posterstore/config"
	"posterstore/internal/domain/entity"
	"posterstore/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The token is only a carrier for the self-declared role; it authenticates nobody.
type jwtService struct {
	secret string        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    time.Hour * 24,
	}, nil
}

// GenerateToken creates a signed session token carrying the declared role.
func (s *jwtService) GenerateToken(role entity.Role) (string, error) {
	claims := jwt.MapClaims{
		"role": role.String(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string and returns the carried role.
func (s *jwtService) ValidateToken(tokenString string) (entity.Role, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("failed to parse token claims")
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("role missing from token")
	}

	role := entity.Role(roleStr)
	if !role.IsValid() {
		return "", errors.New("unknown role in token")
	}

	return role, nil
}

// TokenDuration returns the configured token lifetime.
func (s *jwtService) TokenDuration() time.Duration {
	return s.ttl
}
