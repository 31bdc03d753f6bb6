package domain

import "time"

// SessionClaims is the decoded content of a session token.
type SessionClaims struct {
	ID        string
	UserID    string
	Username  string
	Email     string
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
