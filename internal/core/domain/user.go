package domain

import (
	"sort"
	"strings"
	"time"
)

const (
	RoleAdmin = "admin"

	// ProviderGoogle identifies identities verified by Google Sign-In.
	ProviderGoogle = "google"

	googleUsernamePrefix = "g_"
)

// User models a local account resolved from an external identity.
type User struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	Roles       []string  `json:"roles"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ExternalIdentity is the set of facts an identity provider asserted about
// the bearer of a token. It is never persisted.
type ExternalIdentity struct {
	Provider    string
	ExternalID  string
	Email       string
	DisplayName string
}

// NewUserFromIdentity builds the account created on a first login. The user
// ID is the provider subject and the username is derived from it.
func NewUserFromIdentity(id *ExternalIdentity, now time.Time) *User {
	return &User{
		ID:          id.ExternalID,
		DisplayName: id.DisplayName,
		Email:       id.Email,
		Username:    SyntheticUsername(id.Provider, id.ExternalID),
		Roles:       []string{},
		CreatedAt:   now.UTC(),
	}
}

// SyntheticUsername returns the provider-prefixed username for an external ID.
func SyntheticUsername(provider, externalID string) string {
	switch provider {
	case ProviderGoogle:
		return googleUsernamePrefix + externalID
	default:
		return provider + "_" + externalID
	}
}

// NormalizeEmail is the lookup key for emails.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeRoles turns roles into an ordered set: no blanks, no duplicates,
// sorted ascending. The result is never nil.
func NormalizeRoles(roles []string) []string {
	seen := make(map[string]struct{}, len(roles))
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// HasAnyRole reports whether roles contains at least one of allowed.
func HasAnyRole(roles []string, allowed ...string) bool {
	for _, r := range roles {
		for _, a := range allowed {
			if r == a {
				return true
			}
		}
	}
	return false
}
