package impl

import (
	"context"
	"testing"
	"time"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	mockRepo "vitrine/internal/mocks/repository"
	mockSvc "vitrine/internal/mocks/service"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository, *mockRepo.MockRefreshTokenRepository, *mockSvc.MockTokenService, *mockSvc.MockPasswordHasher, *mockSvc.MockOAuthService) {
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	passwordHasher := mockSvc.NewMockPasswordHasher(t)
	oauthService := mockSvc.NewMockOAuthService(t)

	svc := NewUserService(UserServiceParams{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		TokenService:     tokenService,
		PasswordHasher:   passwordHasher,
		OAuthService:     oauthService,
		Logger:           newDiscardLogger(),
	})

	return svc, userRepo, refreshTokenRepo, tokenService, passwordHasher, oauthService
}

func TestUserService_Register(t *testing.T) {
	svc, userRepo, _, _, passwordHasher, _ := newUserService(t)
	ctx := context.Background()

	passwordHasher.On("Hash", "s3cret-pass").Return("hashed", nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, entity.RoleOwner, user.Role)
	assert.Nil(t, user.StoreID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, userRepo, _, _, passwordHasher, _ := newUserService(t)
	ctx := context.Background()

	passwordHasher.On("Hash", "s3cret-pass").Return("hashed", nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	user, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "s3cret-pass",
	})
	require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	assert.Nil(t, user)
}

func TestUserService_Login(t *testing.T) {
	svc, userRepo, refreshTokenRepo, tokenService, passwordHasher, _ := newUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleOwner,
	}

	userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)
	passwordHasher.On("Compare", "hashed", "s3cret-pass").Return(nil)
	tokenService.On("GenerateTokens", user).Return("access", "refresh", nil)
	tokenService.On("RefreshTokenDuration").Return(24 * time.Hour)
	refreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	tokens, err := svc.Login(ctx, "ana@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
	assert.Equal(t, user, tokens.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, _, _, passwordHasher, _ := newUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed"}
	userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)
	passwordHasher.On("Compare", "hashed", "wrong").Return(assert.AnError)

	tokens, err := svc.Login(ctx, "ana@example.com", "wrong")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, tokens)
}

func TestUserService_Login_GoogleAccountWithoutPassword(t *testing.T) {
	svc, userRepo, _, _, _, _ := newUserService(t)
	ctx := context.Background()

	// Accounts created via Google sign-in carry no hash and must not be
	// reachable through the local password flow.
	user := &entity.User{ID: uuid.New(), PasswordHash: ""}
	userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)

	tokens, err := svc.Login(ctx, "ana@example.com", "anything")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, tokens)
}

func TestUserService_LoginWithGoogle_CreatesAccount(t *testing.T) {
	svc, userRepo, refreshTokenRepo, tokenService, _, oauthService := newUserService(t)
	ctx := context.Background()

	googleUser := &service.GoogleUser{Subject: "google-sub", Email: "ana@example.com", Name: "Ana"}
	oauthService.On("VerifyIDToken", ctx, "id-token").Return(googleUser, nil)
	userRepo.On("FindByEmail", ctx, googleUser.Email).
		Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	tokenService.On("GenerateTokens", mock.AnythingOfType("*entity.User")).
		Return("access", "refresh", nil)
	tokenService.On("RefreshTokenDuration").Return(24 * time.Hour)
	refreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	tokens, err := svc.LoginWithGoogle(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, googleUser.Email, tokens.User.Email)
	assert.Equal(t, entity.RoleOwner, tokens.User.Role)
	assert.Empty(t, tokens.User.PasswordHash)
}

func TestUserService_RefreshTokens_RotatesToken(t *testing.T) {
	svc, userRepo, refreshTokenRepo, tokenService, _, _ := newUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RoleOwner}
	oldToken := "old-refresh-token"
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken(oldToken),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tokenService.On("ValidateRefreshToken", oldToken).Return(userID, nil)
	refreshTokenRepo.On("FindByHash", ctx, hashToken(oldToken)).Return(stored, nil)
	refreshTokenRepo.On("DeleteByHash", ctx, hashToken(oldToken)).Return(nil)
	userRepo.On("FindByID", ctx, userID).Return(user, nil)
	tokenService.On("GenerateTokens", user).Return("new-access", "new-refresh", nil)
	tokenService.On("RefreshTokenDuration").Return(24 * time.Hour)
	refreshTokenRepo.On("Create", ctx, mock.MatchedBy(func(row *entity.RefreshToken) bool {
		return row.UserID == userID && row.TokenHash == hashToken("new-refresh")
	})).Return(nil)

	tokens, err := svc.RefreshTokens(ctx, oldToken)
	require.NoError(t, err)
	assert.Equal(t, "new-refresh", tokens.RefreshToken)
}

func TestUserService_RefreshTokens_Expired(t *testing.T) {
	svc, _, refreshTokenRepo, tokenService, _, _ := newUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	oldToken := "old-refresh-token"
	stored := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: hashToken(oldToken),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	tokenService.On("ValidateRefreshToken", oldToken).Return(userID, nil)
	refreshTokenRepo.On("FindByHash", ctx, hashToken(oldToken)).Return(stored, nil)

	tokens, err := svc.RefreshTokens(ctx, oldToken)
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, tokens)
}

func TestUserService_Logout_UnknownTokenIsNoop(t *testing.T) {
	svc, _, refreshTokenRepo, _, _, _ := newUserService(t)
	ctx := context.Background()

	refreshTokenRepo.On("DeleteByHash", ctx, mock.AnythingOfType("string")).
		Return(repository.ErrRefreshTokenNotFound)

	require.NoError(t, svc.Logout(ctx, "never-issued"))
}
