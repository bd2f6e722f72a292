package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/slooze/commodities-admin/internal/api/middleware"
	"github.com/slooze/commodities-admin/internal/core/domain"
)

// currentIdentity returns the identity injected by the Auth middleware.
// Routes are gated before they reach a handler, so an absent session here
// means the route was wired without Auth.
func currentIdentity(c echo.Context) (*domain.Identity, error) {
	s := middleware.SessionFrom(c)
	if !s.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return s.Identity, nil
}
