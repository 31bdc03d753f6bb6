package token

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/99minutos/identity-service/internal/core/domain"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestNewJWTIssuer_RejectsShortSecret(t *testing.T) {
	if _, err := NewJWTIssuer("short", time.Hour); !errors.Is(err, ErrSecretTooShort) {
		t.Fatalf("expected ErrSecretTooShort, got %v", err)
	}
}

func TestIssueParse_RoundTrip(t *testing.T) {
	issuer, err := NewJWTIssuer(secret, time.Hour)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	user := &domain.User{ID: "109876543210", Username: "g_109876543210", Email: "ana@example.com"}

	signed := issuer.Issue(user, []string{"member", "admin", "member"})
	claims, err := issuer.Parse(signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != user.Username || claims.Email != user.Email {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if !reflect.DeepEqual(claims.Roles, []string{"admin", "member"}) {
		t.Fatalf("unexpected roles: %#v", claims.Roles)
	}
	if claims.ID == "" {
		t.Fatalf("expected jti")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %s", got)
	}
}

func TestIssue_EmptyRolesEncodedAsList(t *testing.T) {
	issuer, _ := NewJWTIssuer(secret, time.Hour)
	signed := issuer.Issue(&domain.User{ID: "u"}, nil)

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	roles, ok := claims["roles"].([]interface{})
	if !ok || len(roles) != 0 {
		t.Fatalf("expected empty roles list, got %#v", claims["roles"])
	}
}

func TestIssue_UniqueTokenPerCall(t *testing.T) {
	issuer, _ := NewJWTIssuer(secret, time.Hour)
	u := &domain.User{ID: "u"}
	if issuer.Issue(u, nil) == issuer.Issue(u, nil) {
		t.Fatalf("expected distinct tokens")
	}
}

func TestParse_Expired(t *testing.T) {
	issuer, _ := NewJWTIssuer(secret, time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	signed := issuer.Issue(&domain.User{ID: "u"}, nil)

	issuer.now = time.Now
	if _, err := issuer.Parse(signed); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected expired error, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	a, _ := NewJWTIssuer(secret, time.Hour)
	b, _ := NewJWTIssuer("ffffffffffffffffffffffffffffffff", time.Hour)
	if _, err := b.Parse(a.Issue(&domain.User{ID: "u"}, nil)); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	issuer, _ := NewJWTIssuer(secret, time.Hour)
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "u",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tkn.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := issuer.Parse(signed); err == nil {
		t.Fatalf("expected HS512 token to be rejected")
	}
}
