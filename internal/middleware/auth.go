package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/altamar/portal/internal/auth"
	"github.com/altamar/portal/internal/domain"
)

// Context keys set by Authenticate.
const (
	ContextUserID   = "auth.user_id"
	ContextServerID = "auth.server_id"
	ContextRole     = "auth.role"
)

// Authenticate verifies the bearer token and stores the session claims
// on the request context.
func Authenticate(tokens *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing bearer token")
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrorMessage(err))
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextServerID, claims.ServerID)
			c.Set(ContextRole, claims.Role)
			return next(c)
		}
	}
}

// RequireAdmin rejects requests whose session is not an admin session.
// Must run after Authenticate.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role, _ := c.Get(ContextRole).(string); role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}
			return next(c)
		}
	}
}

// RequireCustomer rejects sessions that are not bound to a server.
// Must run after Authenticate.
func RequireCustomer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role, _ := c.Get(ContextRole).(string); role != domain.RoleCustomer {
				return echo.NewHTTPError(http.StatusForbidden, "Customer access required")
			}
			if ServerID(c) == uuid.Nil {
				return echo.NewHTTPError(http.StatusForbidden, "Session is not bound to a server")
			}
			return next(c)
		}
	}
}

// UserID returns the authenticated user's ID, or uuid.Nil when absent.
func UserID(c echo.Context) uuid.UUID {
	raw, _ := c.Get(ContextUserID).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// ServerID returns the session's server scope, or uuid.Nil for admin
// sessions.
func ServerID(c echo.Context) uuid.UUID {
	raw, _ := c.Get(ContextServerID).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
