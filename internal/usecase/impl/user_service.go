// Package impl contains the concrete business services behind the usecase
// interfaces.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	tokenService     service.TokenService
	passwordHasher   service.PasswordHasher
	oauthService     service.OAuthService
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	TokenService     service.TokenService
	PasswordHasher   service.PasswordHasher
	OAuthService     service.OAuthService
	Logger           *slog.Logger
}

// NewUserService creates a new user service instance.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		tokenService:     params.TokenService,
		passwordHasher:   params.PasswordHasher,
		oauthService:     params.OAuthService,
		logger:           params.Logger,
	}
}

// Register creates a new account with a hashed password. New accounts start
// as owners without a store; creating the store links it to them.
func (s *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	passwordHash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         entity.RoleOwner,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailAlreadyExists
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "create user")
	}

	return user, nil
}

// Login authenticates with email and password and issues a token pair.
func (s *userService) Login(ctx context.Context, email, password string) (*usecase.AuthTokens, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find user by email")
	}

	// Delegated accounts carry no password hash and cannot log in locally.
	if user.PasswordHash == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if err := s.passwordHasher.Compare(user.PasswordHash, password); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// LoginWithGoogle authenticates with a Google ID token, creating the account
// on first sign-in.
func (s *userService) LoginWithGoogle(ctx context.Context, idToken string) (*usecase.AuthTokens, error) {
	googleUser, err := s.oauthService.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails(err.Error())
	}

	user, err := s.userRepo.FindByEmail(ctx, googleUser.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewDatabaseExecuteError(err, "find user by email")
		}

		user = &entity.User{
			ID:    uuid.New(),
			Name:  googleUser.Name,
			Email: googleUser.Email,
			Role:  entity.RoleOwner,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "create google user")
		}

		s.logger.Info("account created from google sign-in",
			slog.String("user_id", user.ID.String()),
		)
	}

	return s.issueTokens(ctx, user)
}

// RefreshTokens rotates a refresh token into a new token pair. The presented
// token is revoked even when it is still valid, so each token is single-use.
func (s *userService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.AuthTokens, error) {
	userID, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	tokenHash := hashToken(refreshToken)

	stored, err := s.refreshTokenRepo.FindByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find refresh token")
	}

	if stored.UserID != userID || time.Now().After(stored.ExpiresAt) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	if err := s.refreshTokenRepo.DeleteByHash(ctx, tokenHash); err != nil &&
		!errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "rotate refresh token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find user by ID")
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes a refresh token. Unknown tokens are ignored so logout is
// idempotent.
func (s *userService) Logout(ctx context.Context, refreshToken string) error {
	err := s.refreshTokenRepo.DeleteByHash(ctx, hashToken(refreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return domainerrors.NewDatabaseExecuteError(err, "delete refresh token")
	}

	return nil
}

// GetProfile returns the account of the authenticated user.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find user by ID")
	}

	return user, nil
}

// issueTokens signs a token pair and persists the refresh token's hash.
func (s *userService) issueTokens(ctx context.Context, user *entity.User) (*usecase.AuthTokens, error) {
	accessToken, refreshToken, err := s.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	tokenRow := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(s.tokenService.RefreshTokenDuration()),
	}
	if err := s.refreshTokenRepo.Create(ctx, tokenRow); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "store refresh token")
	}

	return &usecase.AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// hashToken derives the storable digest of an opaque refresh token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
