package service

import "context"

// GoogleUser is the identity extracted from a verified Google ID token.
type GoogleUser struct {
	Subject string // Google's stable account id.
	Email   string
	Name    string
}

// OAuthService verifies delegated sign-in assertions.
type OAuthService interface {
	// VerifyIDToken validates a Google ID token and returns the identity it asserts.
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleUser, error)
}
