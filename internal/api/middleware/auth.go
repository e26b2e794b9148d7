package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clientportal/project-portal/internal/core/token"
)

// ClaimsKey is the echo context key under which verified claims are stored.
const ClaimsKey = "claims"

// Auth extracts the bearer token, verifies it, and injects the decoded
// claims into the request context. Malformed, expired, and badly signed
// tokens all collapse to a single 401.
func Auth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// Claims retrieves the verified claims injected by Auth, or nil when the
// middleware did not run.
func Claims(c echo.Context) *token.Claims {
	claims, _ := c.Get(ClaimsKey).(*token.Claims)
	return claims
}
