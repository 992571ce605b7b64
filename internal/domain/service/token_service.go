// Package service declares the domain-facing contracts implemented by the
// infrastructure layer (tokens, hashing, payments, storage, caching, push).
package service

import (
	"time"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims carries the identity information embedded in an access token.
type Claims struct {
	UserID  uuid.UUID
	Role    entity.Role
	StoreID *uuid.UUID
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(user *entity.User) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns the user id it was issued to.
	ValidateRefreshToken(tokenString string) (uuid.UUID, error)

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
