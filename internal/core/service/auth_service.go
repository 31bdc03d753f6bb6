package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/identity-service/internal/core/domain"
	"github.com/99minutos/identity-service/internal/core/ports"
)

// AuthService exchanges external identity tokens for session tokens.
type AuthService struct {
	repo     ports.UserRepository
	verifier ports.IdentityVerifier
	issuer   ports.TokenIssuer
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(
	repo ports.UserRepository,
	verifier ports.IdentityVerifier,
	issuer ports.TokenIssuer,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:     repo,
		verifier: verifier,
		issuer:   issuer,
		log:      log,
		now:      time.Now,
	}
}

// GoogleLogin verifies a Google ID token, resolves the matching local user
// (creating it on first login) and returns a fresh session token.
func (s *AuthService) GoogleLogin(ctx context.Context, tokenID string) (*ports.LoginResult, error) {
	if strings.TrimSpace(tokenID) == "" {
		return nil, domain.ErrInvalidCredential
	}

	// 1. Provider check. Every failure, network included, is a bad credential.
	identity, err := s.verifier.Verify(ctx, tokenID)
	if err != nil {
		s.log.Debug().Err(err).Msg("identity token rejected")
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCredential, err)
	}

	// 2. Find or create.
	created := false
	user, err := s.repo.FindByEmail(ctx, identity.Email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		user, err = s.createUser(ctx, identity)
		if err != nil {
			return nil, err
		}
		created = true
	case err != nil:
		return nil, fmt.Errorf("google login: find user: %w", err)
	}

	// 3. Roles, only once the user is known to exist.
	roles := []string{}
	if !created {
		roles, err = s.repo.GetRoles(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("google login: get roles: %w", err)
		}
		roles = domain.NormalizeRoles(roles)
	}

	s.log.Info().
		Str("user_id", user.ID).
		Str("provider", identity.Provider).
		Bool("created", created).
		Int("roles", len(roles)).
		Msg("google login")

	res := s.result(user, roles)
	res.Created = created
	return res, nil
}

// createUser persists the first-login account. The write is issued only if
// ctx is still live and then runs detached from ctx cancellation.
func (s *AuthService) createUser(ctx context.Context, identity *domain.ExternalIdentity) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	user := domain.NewUserFromIdentity(identity, s.now())
	if err := s.repo.Create(context.WithoutCancel(ctx), user); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("user creation rejected")
		return nil, fmt.Errorf("%w: %v", domain.ErrUserCreationFailed, err)
	}
	return user, nil
}

// CurrentUser reloads the user behind a session and issues a new token with
// the roles currently held.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*ports.LoginResult, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	roles, err := s.repo.GetRoles(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("current user: get roles: %w", err)
	}
	return s.result(user, domain.NormalizeRoles(roles)), nil
}

func (s *AuthService) GrantRole(ctx context.Context, userID, role string) error {
	if _, err := s.repo.FindByID(ctx, userID); err != nil {
		return fmt.Errorf("grant role: %w", err)
	}
	if err := s.repo.AddRole(ctx, userID, role); err != nil {
		return fmt.Errorf("grant role: %w", err)
	}
	s.log.Info().Str("user_id", userID).Str("role", role).Msg("role granted")
	return nil
}

func (s *AuthService) result(user *domain.User, roles []string) *ports.LoginResult {
	return &ports.LoginResult{
		UserID:       user.ID,
		DisplayName:  user.DisplayName,
		Username:     user.Username,
		Roles:        roles,
		SessionToken: s.issuer.Issue(user, roles),
	}
}
