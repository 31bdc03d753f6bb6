package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/identity-service/internal/api/metrics"
	"github.com/99minutos/identity-service/internal/api/middleware"
	"github.com/99minutos/identity-service/internal/core/domain"
	"github.com/99minutos/identity-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type googleLoginRequest struct {
	TokenID string `json:"tokenId"`
}

type grantRoleRequest struct {
	Role string `json:"role" validate:"required,alphanum,max=32"`
}

type loginResponse struct {
	DisplayName  string   `json:"displayName"`
	Username     string   `json:"username"`
	Roles        []string `json:"roles"`
	SessionToken string   `json:"sessionToken"`
}

func toLoginResponse(res *ports.LoginResult) loginResponse {
	roles := res.Roles
	if roles == nil {
		roles = []string{}
	}
	return loginResponse{
		DisplayName:  res.DisplayName,
		Username:     res.Username,
		Roles:        roles,
		SessionToken: res.SessionToken,
	}
}

// GoogleLogin exchanges a Google ID token for a session token.
//
// @Summary      Sign in with Google
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      googleLoginRequest  true  "Google ID token"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/google [post]
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	// An absent token is an unusable credential like any other.
	res, err := h.authService.GoogleLogin(c.Request().Context(), req.TokenID)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(domain.ProviderGoogle, loginFailure(err)).Inc()
		return err
	}

	result := metrics.LoginExisting
	if res.Created {
		result = metrics.LoginCreated
	}
	metrics.LoginsTotal.WithLabelValues(domain.ProviderGoogle, result).Inc()

	return c.JSON(http.StatusOK, toLoginResponse(res))
}

func loginFailure(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredential):
		return metrics.LoginInvalidCredential
	case errors.Is(err, domain.ErrUserCreationFailed):
		return metrics.LoginCreationFailed
	default:
		return metrics.LoginError
	}
}

// CurrentUser returns the signed-in user with a refreshed session token.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	res, err := h.authService.CurrentUser(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLoginResponse(res))
}

// GrantRole adds a role to a user.
//
// @Summary      Grant a role
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        id    path      string            true  "User ID"
// @Param        body  body      grantRoleRequest  true  "Role to grant"
// @Success      204
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/users/{id}/roles [post]
func (h *AuthHandler) GrantRole(c echo.Context) error {
	var req grantRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.authService.GrantRole(c.Request().Context(), c.Param("id"), req.Role); err != nil {
		return err
	}
	metrics.RoleGrantsTotal.WithLabelValues(req.Role).Inc()
	return c.NoContent(http.StatusNoContent)
}

// errorResponse documents the error envelope rendered by the API error handler.
type errorResponse struct {
	Error string `json:"error"`
}
