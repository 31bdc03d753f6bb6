package domain

import "errors"

var (
	// ErrInvalidCredential means the identity provider rejected the token.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrUserCreationFailed means the store refused a new user.
	ErrUserCreationFailed = errors.New("user creation failed")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrForbidden    = errors.New("access forbidden")
)
