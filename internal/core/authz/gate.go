// Package authz decides what a session may reach. Every function here is
// pure: no I/O, no suspension.
//
// There is no role hierarchy. A route that names a role admits exactly that
// role; a route that names none admits any authenticated session.
package authz

import "github.com/slooze/commodities-admin/internal/core/domain"

// IsAllowed reports whether s may proceed when required is needed.
// An empty required role admits any authenticated session.
func IsAllowed(s domain.Session, required domain.Role) bool {
	if !s.Authenticated() {
		return false
	}
	if required == "" {
		return true
	}
	return s.Role() == required
}

// Decision is the outcome of a navigation check.
type Decision int

const (
	Allow Decision = iota
	// RedirectLogin is returned for absent sessions.
	RedirectLogin
	// RedirectHome is returned when the session lacks the required role.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectHome:
		return "redirect_home"
	}
	return "unknown"
}

// Route names a navigable view.
type Route string

const (
	RouteProducts  Route = "/products"
	RouteSettings  Route = "/settings"
	RouteDashboard Route = "/dashboard"
	RouteUsers     Route = "/users"
	RouteOrders    Route = "/orders"
)

// HomeRoute is where role mismatches land.
const HomeRoute = RouteProducts

var routeRoles = map[Route]domain.Role{
	RouteProducts:  "",
	RouteSettings:  "",
	RouteDashboard: domain.RoleManager,
	RouteUsers:     domain.RoleManager,
	RouteOrders:    domain.RoleManager,
}

// RouteRole returns the role a route requires and whether the route exists.
func RouteRole(r Route) (domain.Role, bool) {
	role, ok := routeRoles[r]
	return role, ok
}

// Decide applies IsAllowed to a route. Unknown routes behave like routes
// without a role requirement, so only authentication is checked.
func Decide(s domain.Session, r Route) Decision {
	if !s.Authenticated() {
		return RedirectLogin
	}
	role := routeRoles[r]
	if !IsAllowed(s, role) {
		return RedirectHome
	}
	return Allow
}

// Action names a catalog mutation.
type Action string

const (
	ActionCreateProduct Action = "product.create"
	ActionUpdateProduct Action = "product.update"
	ActionDeleteProduct Action = "product.delete"
)

// ActionRole returns the role needed to perform a. Catalog mutations are
// reserved for managers.
func ActionRole(a Action) domain.Role {
	switch a {
	case ActionCreateProduct, ActionUpdateProduct, ActionDeleteProduct:
		return domain.RoleManager
	}
	return ""
}

// CanPerform is IsAllowed for an action.
func CanPerform(s domain.Session, a Action) bool {
	return IsAllowed(s, ActionRole(a))
}
