package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

// AdminOnly gates a route on the caller's stored role. It requires Auth to
// have populated the email claim, then re-reads the role from the user record
// on every call, so a revoked role takes effect on the next request.
func AdminOnly(roles ports.RoleLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(ContextEmail).(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden: No email found in token")
			}

			role, err := roles.RoleByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusForbidden, "Forbidden: Admins only")
				}
				return err
			}
			if role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden: Admins only")
			}

			return next(c)
		}
	}
}
