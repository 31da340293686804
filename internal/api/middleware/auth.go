package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/pkg/token"
)

// Cookie names used for token transport. The original clients depend on
// these exact names.
const (
	AccessCookie  = "jwt"
	RefreshCookie = "refresh"
)

// identityKey is the echo context key the verified identity is stored under.
const identityKey = "identity"

// Authenticate verifies the access token cookie and injects the resulting
// identity into the request context. It fails closed: a missing or invalid
// token terminates the request with 401 before any handler logic runs.
func Authenticate(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AccessCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(identityKey, domain.Identity{
				ID:     claims.Subject,
				Email:  claims.Email,
				RoleID: claims.RoleID,
			})

			return next(c)
		}
	}
}

// IdentityFrom extracts the identity injected by Authenticate. The bool is
// false when the middleware did not run or rejected the request.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok
}
