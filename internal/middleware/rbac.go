package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole enforces that the authenticated operator carries one of roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			value, ok := c.Get(ContextKeyOperatorRole).(string)
			if !ok || value == "" {
				return deny(c, http.StatusForbidden, "missing role")
			}
			for _, role := range roles {
				if value == role {
					return next(c)
				}
			}
			return deny(c, http.StatusForbidden, "insufficient permissions")
		}
	}
}
