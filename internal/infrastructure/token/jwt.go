package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/99minutos/identity-service/internal/core/domain"
)

const (
	// MinSecretLength is the shortest HMAC secret accepted for HS256.
	MinSecretLength = 32
	defaultTTL      = 7 * 24 * time.Hour
)

var ErrSecretTooShort = fmt.Errorf("token: jwt secret must be at least %d bytes", MinSecretLength)

// sessionClaims is the JWT body of a session token.
type sessionClaims struct {
	Username string   `json:"unique_name"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTIssuer signs and verifies HS256 session tokens.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTIssuer validates the signing key up front so that Issue never fails.
func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrSecretTooShort
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue mints a session token carrying the user identity and roles.
func (i *JWTIssuer) Issue(user *domain.User, roles []string) string {
	now := i.now()
	claims := sessionClaims{
		Username: user.Username,
		Email:    user.Email,
		Roles:    domain.NormalizeRoles(roles),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		// HMAC signing with a []byte key has no runtime failure mode.
		panic(fmt.Sprintf("token: sign session token: %v", err))
	}
	return signed
}

// Parse verifies the signature and expiry of a session token.
func (i *JWTIssuer) Parse(tokenString string) (*domain.SessionClaims, error) {
	var claims sessionClaims
	tkn, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	if !tkn.Valid || claims.Subject == "" {
		return nil, errors.New("token: invalid session token")
	}

	out := &domain.SessionClaims{
		ID:       claims.ID,
		UserID:   claims.Subject,
		Username: claims.Username,
		Email:    claims.Email,
		Roles:    domain.NormalizeRoles(claims.Roles),
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
