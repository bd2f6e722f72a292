package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/slooze/commodities-admin/internal/api/metrics"
	"github.com/slooze/commodities-admin/internal/core/authz"
	"github.com/slooze/commodities-admin/internal/core/domain"
)

// Gate admits requests whose session satisfies authz.IsAllowed for required.
// An empty required role admits every authenticated session.
func Gate(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := SessionFrom(c)
			if authz.IsAllowed(session, required) {
				return next(c)
			}
			if !session.Authenticated() {
				metrics.GateDenialsTotal.WithLabelValues(c.Path(), "unauthenticated").Inc()
				return domain.ErrUnauthenticated
			}
			metrics.GateDenialsTotal.WithLabelValues(c.Path(), "forbidden").Inc()
			return domain.ErrForbidden
		}
	}
}

// GateAction is Gate for a catalog action.
func GateAction(action authz.Action) echo.MiddlewareFunc {
	return Gate(authz.ActionRole(action))
}

// GateRoute is Gate for a navigable view. Unknown routes only require
// authentication, matching authz.Decide.
func GateRoute(route authz.Route) echo.MiddlewareFunc {
	role, _ := authz.RouteRole(route)
	return Gate(role)
}
