package ports

import "context"

// LoginResult is what a client receives after a successful login.
type LoginResult struct {
	UserID       string
	DisplayName  string
	Username     string
	Roles        []string
	SessionToken string
	// Created is set when the login created the local account.
	Created bool
}

type AuthService interface {
	GoogleLogin(ctx context.Context, tokenID string) (*LoginResult, error)
	CurrentUser(ctx context.Context, userID string) (*LoginResult, error)
	GrantRole(ctx context.Context, userID, role string) error
}
