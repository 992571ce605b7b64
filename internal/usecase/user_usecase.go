// Package usecase declares the application-facing contracts between the HTTP
// delivery layer and the business services.
package usecase

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthTokens is the result of a successful authentication.
type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account and authentication use cases.
type UserUsecase interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login authenticates with email and password and issues a token pair.
	Login(ctx context.Context, email, password string) (*AuthTokens, error)

	// LoginWithGoogle authenticates with a Google ID token, creating the
	// account on first sign-in.
	LoginWithGoogle(ctx context.Context, idToken string) (*AuthTokens, error)

	// RefreshTokens rotates a refresh token into a new token pair.
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)

	// Logout revokes a refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// GetProfile returns the account of the authenticated user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
