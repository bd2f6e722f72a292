package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/slooze/commodities-admin/internal/api/middleware"
	"github.com/slooze/commodities-admin/internal/core/domain"
)

type stubAuthenticator struct {
	loginFn func(ctx context.Context, email, password string) (*domain.Identity, error)
}

func (s *stubAuthenticator) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	return s.loginFn(ctx, email, password)
}

type stubIssuer struct {
	token string
	err   error
}

func (s stubIssuer) Issue(domain.Identity) (string, error) { return s.token, s.err }

var managerIdentity = domain.Identity{
	ID:    "1",
	Email: "manager@slooze.com",
	Name:  "Manager User",
	Role:  domain.RoleManager,
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthenticator{
		loginFn: func(_ context.Context, email, password string) (*domain.Identity, error) {
			if email != "manager@slooze.com" || password != "manager123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			id := managerIdentity
			return &id, nil
		},
	}
	h := NewAuthHandler(stub, stubIssuer{token: "token123"})

	c, rec := newJSONContext(e, http.MethodPost, "/auth/login", `{"email":"manager@slooze.com","password":"manager123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "manager@slooze.com" || user["role"] != "manager" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if _, leaked := user["password"]; leaked {
		t.Fatal("password must not be serialized")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	stub := &stubAuthenticator{
		loginFn: func(context.Context, string, string) (*domain.Identity, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, stubIssuer{token: "unused"})

	c, rec := newJSONContext(e, http.MethodPost, "/auth/login", `{"email":"manager@slooze.com","password":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("nothing should be written on failure, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_IssuerFailure(t *testing.T) {
	e := echo.New()
	stub := &stubAuthenticator{
		loginFn: func(context.Context, string, string) (*domain.Identity, error) {
			id := managerIdentity
			return &id, nil
		},
	}
	boom := errors.New("sign failed")
	h := NewAuthHandler(stub, stubIssuer{err: boom})

	c, _ := newJSONContext(e, http.MethodPost, "/auth/login", `{"email":"a","password":"b"}`)
	if err := h.Login(c); !errors.Is(err, boom) {
		t.Fatalf("expected issuer error, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthenticator{
		loginFn: func(context.Context, string, string) (*domain.Identity, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, stubIssuer{})

	c, _ := newJSONContext(e, http.MethodPost, "/auth/login", "{")
	if code := httpCode(t, h.Login(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthenticator{}, stubIssuer{})

	c, rec := newJSONContext(e, http.MethodGet, "/auth/me", "")
	if err := h.Me(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated without a session, got %v", err)
	}

	id := managerIdentity
	c, rec = newJSONContext(e, http.MethodGet, "/auth/me", "")
	middleware.WithSession(c, &id)
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "" || resp.User == nil || resp.User.ID != "1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
