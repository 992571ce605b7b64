// Package google verifies Google sign-in assertions.
package google

import (
	"context"

	"vitrine/config"
	"vitrine/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// OAuthService validates Google ID tokens issued to the configured client id.
type OAuthService struct {
	clientID string
}

// NewOAuthService creates a new Google OAuth service.
func NewOAuthService(cfg *config.Config) service.OAuthService {
	svc := &OAuthService{}
	if cfg.GoogleOAuth != nil {
		svc.clientID = cfg.GoogleOAuth.ClientID
	}

	return svc
}

// VerifyIDToken validates a Google ID token and returns the identity it asserts.
func (s *OAuthService) VerifyIDToken(ctx context.Context, rawToken string) (*service.GoogleUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google oauth client id is not configured")
	}

	payload, err := idtoken.Validate(ctx, rawToken, s.clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate google id token")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, errors.New("google id token carries no email claim")
	}

	return &service.GoogleUser{
		Subject: payload.Subject,
		Email:   email,
		Name:    name,
	}, nil
}
