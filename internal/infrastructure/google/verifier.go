// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/99minutos/identity-service/internal/core/domain"
)

// Issuer is Google's OpenID Connect issuer URL.
const Issuer = "https://accounts.google.com"

// Verifier checks Google ID tokens against Google's published signing keys
// and the configured OAuth client ID.
type Verifier struct {
	verifier *oidc.IDTokenVerifier
}

// New runs OIDC discovery against Google. It needs network access and is
// meant to be called once at startup.
func New(ctx context.Context, clientID string) (*Verifier, error) {
	if clientID == "" {
		return nil, errors.New("google: client id is required")
	}

	provider, err := oidc.NewProvider(ctx, Issuer)
	if err != nil {
		return nil, fmt.Errorf("google: init oidc provider: %w", err)
	}

	return &Verifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

// NewWithVerifier wraps an already configured go-oidc verifier.
func NewWithVerifier(v *oidc.IDTokenVerifier) *Verifier {
	return &Verifier{verifier: v}
}

type idTokenClaims struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// Verify validates signature, issuer, audience and expiry of rawToken and
// returns the identity it asserts.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (*domain.ExternalIdentity, error) {
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("google: verify id token: %w", err)
	}

	var claims idTokenClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("google: parse id token claims: %w", err)
	}
	if claims.Subject == "" || claims.Email == "" {
		return nil, errors.New("google: id token missing sub or email")
	}
	// Users are matched by email, so an unverified address is not an identity.
	if !claims.EmailVerified {
		return nil, errors.New("google: id token email is not verified")
	}

	name := claims.Name
	if name == "" {
		name = claims.Email
	}

	return &domain.ExternalIdentity{
		Provider:    domain.ProviderGoogle,
		ExternalID:  claims.Subject,
		Email:       claims.Email,
		DisplayName: name,
	}, nil
}
