package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

// Context keys populated by Auth for downstream stages.
const (
	ContextEmail  = "email"
	ContextClaims = "claims"
)

// Auth extracts the bearer token, verifies it against the identity provider,
// and injects the resolved claims into the request context. A missing or
// malformed header is 401; a token the verifier rejects is 403. One
// verification attempt per request, no retries.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: No token provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: No token provided")
			}

			claims, err := verifier.Verify(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden: Invalid token")
			}

			c.Set(ContextEmail, claims.Email)
			c.Set(ContextClaims, claims)

			return next(c)
		}
	}
}
