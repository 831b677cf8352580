package middleware

import (
	"net/http"
	"strings"

	"github.com/aethelgard/aethelgardapi/internal/service"
	"github.com/aethelgard/aethelgardapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

const claimsContextKey = "claims"

// AuthMiddleware creates a new authorization middleware. It verifies the
// bearer token and stores the decoded claims in the request context.
func AuthMiddleware(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "Missing Authorization header")
			}

			parts := strings.SplitN(auth, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "Invalid Authorization header format")
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "Invalid or expired token")
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// AdminMiddleware creates the admin gate middleware. The decision is
// recomputed per request from the stored admin flag and the configured
// allow-list, not taken from the token snapshot alone.
func AdminMiddleware(authService *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := GetClaims(c)
			if claims == nil {
				return response.ErrorResponse(c, http.StatusUnauthorized, "AuthorizationException", "Missing Authorization header")
			}

			isAdmin, err := authService.IsAdmin(claims)
			if err != nil {
				return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", "Failed to verify privileges")
			}
			if !isAdmin {
				return response.ErrorResponse(c, http.StatusForbidden, "ForbiddenException", "Forbidden")
			}

			return next(c)
		}
	}
}

// GetClaims returns the decoded token claims stored by AuthMiddleware, or
// nil when the request is unauthenticated
func GetClaims(c echo.Context) *service.Claims {
	claims, _ := c.Get(claimsContextKey).(*service.Claims)
	return claims
}
