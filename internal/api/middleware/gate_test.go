package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/slooze/commodities-admin/internal/core/authz"
	"github.com/slooze/commodities-admin/internal/core/domain"
)

var storekeeper = domain.Identity{ID: "2", Email: "storekeeper@slooze.com", Name: "Sarah Keeper", Role: domain.RoleStorekeeper}

func runGate(t *testing.T, mw echo.MiddlewareFunc, identity *domain.Identity) (bool, error) {
	t.Helper()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if identity != nil {
		WithSession(c, identity)
	}
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	return called, err
}

func TestGate_ManagerOnly(t *testing.T) {
	called, err := runGate(t, Gate(domain.RoleManager), &manager)
	if err != nil || !called {
		t.Fatalf("manager should pass: called=%v err=%v", called, err)
	}

	called, err = runGate(t, Gate(domain.RoleManager), &storekeeper)
	if called {
		t.Fatal("storekeeper should not reach next")
	}
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestGate_AnyAuthenticated(t *testing.T) {
	for _, id := range []*domain.Identity{&manager, &storekeeper} {
		called, err := runGate(t, Gate(""), id)
		if err != nil || !called {
			t.Fatalf("%s should pass: called=%v err=%v", id.Role, called, err)
		}
	}
}

func TestGate_AbsentSession(t *testing.T) {
	for _, role := range []domain.Role{"", domain.RoleManager, domain.RoleStorekeeper} {
		called, err := runGate(t, Gate(role), nil)
		if called {
			t.Fatalf("absent session passed gate for role %q", role)
		}
		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	}
}

func TestGateAction_DeleteProduct(t *testing.T) {
	if _, err := runGate(t, GateAction(authz.ActionDeleteProduct), &storekeeper); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
