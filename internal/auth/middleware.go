package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	"blogapi/internal/apierror"
)

const claimsContextKey = "auth.claims"

// Middleware returns an echo middleware that extracts and validates a
// Bearer JWT from the Authorization header and stores the resulting
// Claims in the request context. Requests without a valid token are
// rejected with an unauthorized error carrying the underlying reason.
func Middleware(v *Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return apierror.Unauthorized("missing authorization header")
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return apierror.Unauthorized("invalid authorization header")
			}
			claims, err := v.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				return apierror.Unauthorized("invalid token: " + err.Error())
			}
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom retrieves the authenticated claims from the request context (if any).
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	return claims, ok
}
