package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token lookup matches no row.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository persists revocable refresh tokens.
type RefreshTokenRepository interface {
	// Create stores a new refresh token row.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a token by the SHA-256 hash of its opaque value.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash revokes a single token.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByUser revokes every token issued to a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
