package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/identity-service/internal/core/domain"
)

// RBAC lets the request through when the session holds any of allowedRoles.
// It must run after Auth.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !domain.HasAnyRole(claims.Roles, allowedRoles...) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
