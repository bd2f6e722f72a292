package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/slooze/commodities-admin/internal/core/domain"
)

const identityKey = "identity"

// TokenParser turns a bearer token back into the identity it was issued for.
type TokenParser interface {
	Parse(token string) (*domain.Identity, error)
}

// Auth validates the bearer token and stores the identity in the context.
// Requests without a valid token are rejected with 401.
func Auth(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := parser.Parse(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// SessionFrom returns the session established by Auth, absent when Auth did
// not run or rejected the request.
func SessionFrom(c echo.Context) domain.Session {
	identity, _ := c.Get(identityKey).(*domain.Identity)
	return domain.NewSession(identity)
}

// WithSession stores identity the way Auth does. Used by tests and by
// handlers that establish a session themselves.
func WithSession(c echo.Context, identity *domain.Identity) {
	c.Set(identityKey, identity)
}
