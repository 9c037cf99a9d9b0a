// Package middleware provides the HTTP middleware used by the API server:
// JWT authentication, request logging, request metrics, and per-member rate
// limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tallyapp/tally/internal/auth"
)

const (
	// memberIDKey is the echo context key for the authenticated member ID.
	memberIDKey = "member_id"
	// emailKey is the echo context key for the authenticated member's email.
	emailKey = "member_email"
)

// MemberID extracts the authenticated member ID from the request context.
// Returns empty string on unauthenticated requests.
func MemberID(c echo.Context) string {
	if id, ok := c.Get(memberIDKey).(string); ok {
		return id
	}
	return ""
}

// RequireAuth returns middleware that validates the Bearer token on every
// request and stores the member identity in the request context.
func RequireAuth(manager *auth.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrMissingToken.Error())
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization header must use Bearer scheme")
			}

			claims, err := manager.Validate(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidToken.Error())
			}

			c.Set(memberIDKey, claims.MemberID)
			c.Set(emailKey, claims.Email)
			return next(c)
		}
	}
}
