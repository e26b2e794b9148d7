package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientportal/project-portal/internal/api/middleware"
	"github.com/clientportal/project-portal/internal/core/token"
)

// ctxClaims extracts the claims injected by the Auth middleware and
// fast-fails before any service call when they are absent. Presence of
// claims proves the middleware ran on this route.
func ctxClaims(c echo.Context) (*token.Claims, error) {
	claims := middleware.Claims(c)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
