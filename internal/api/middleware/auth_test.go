package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/identity-service/internal/core/domain"
	"github.com/99minutos/identity-service/internal/infrastructure/token"
)

func newIssuer(t *testing.T) *token.JWTIssuer {
	t.Helper()
	issuer, err := token.NewJWTIssuer("0123456789abcdef0123456789abcdef", time.Hour)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	return issuer
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	issuer := newIssuer(t)
	signed := issuer.Issue(&domain.User{ID: "u-1", Username: "g_1"}, []string{"admin"})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(issuer)(func(c echo.Context) error {
		called = true
		claims, ok := ClaimsFromContext(c)
		if !ok {
			t.Fatalf("claims not set")
		}
		if claims.UserID != "u-1" || claims.Username != "g_1" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
		if len(claims.Roles) != 1 || claims.Roles[0] != "admin" {
			t.Fatalf("unexpected roles: %v", claims.Roles)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	issuer := newIssuer(t)
	other, err := token.NewJWTIssuer("ffffffffffffffffffffffffffffffff", time.Hour)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Token abc",
		"empty bearer":   "Bearer ",
		"garbage":        "Bearer not-a-token",
		"foreign key":    "Bearer " + other.Issue(&domain.User{ID: "u-1"}, nil),
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set(echo.HeaderAuthorization, header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := Auth(issuer)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
