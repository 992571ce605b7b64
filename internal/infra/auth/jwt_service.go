package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"vitrine/config"
	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/service"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	svc := &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			svc.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return svc, nil
}

// GenerateTokens creates a new access token and refresh token for a given user.
// The access token carries the role and store so authorization stays stateless;
// the refresh token carries only the subject.
func (s *jwtService) GenerateTokens(user *entity.User) (accessToken string, refreshToken string, err error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
		"type": "access",
	}
	if user.StoreID != nil {
		accessClaims["store_id"] = user.StoreID.String()
	}

	accessToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign access token")
	}

	refreshClaims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.refreshTTL).Unix(),
		"type": "refresh",
	}

	refreshToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(s.refreshSecret))
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign refresh token")
	}

	return accessToken, refreshToken, nil
}

// ValidateAccessToken checks an access token and returns its claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	claims, err := s.parseToken(tokenString, s.accessSecret, "access")
	if err != nil {
		return nil, err
	}

	userID, err := subjectUUID(claims)
	if err != nil {
		return nil, err
	}

	role, _ := claims["role"].(string)

	result := &service.Claims{
		UserID: userID,
		Role:   entity.Role(role),
	}

	if rawStoreID, ok := claims["store_id"].(string); ok {
		storeID, err := uuid.Parse(rawStoreID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid store id claim")
		}
		result.StoreID = &storeID
	}

	return result, nil
}

// ValidateRefreshToken checks a refresh token and returns the user id it was issued to.
func (s *jwtService) ValidateRefreshToken(tokenString string) (uuid.UUID, error) {
	claims, err := s.parseToken(tokenString, s.refreshSecret, "refresh")
	if err != nil {
		return uuid.Nil, err
	}

	return subjectUUID(claims)
}

// RefreshTokenDuration returns the configured lifetime of refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// parseToken validates signature, expiry and the token type claim.
func (s *jwtService) parseToken(tokenString, secret, expectedType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	if tokenType, _ := claims["type"].(string); tokenType != expectedType {
		return nil, errors.Errorf("unexpected token type: %s", tokenType)
	}

	return claims, nil
}

func subjectUUID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, _ := claims["sub"].(string)

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid subject claim")
	}

	return userID, nil
}
