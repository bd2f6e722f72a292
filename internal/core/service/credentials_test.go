package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
	"github.com/slooze/commodities-admin/internal/core/service"
	"github.com/slooze/commodities-admin/internal/infrastructure/db/memory"
)

// The demo credential table end to end: every listed pair logs in as its
// identity, every crossed pair fails.
func TestAuthService_DefaultCredentials(t *testing.T) {
	repo, err := memory.NewIdentityRepository(memory.DefaultCredentials())
	if err != nil {
		t.Fatalf("identity repo: %v", err)
	}
	svc := service.NewAuthService(repo, 0, zerolog.Nop())
	ctx := context.Background()

	seeds := memory.DefaultCredentials()
	for _, s := range seeds {
		id, err := svc.Login(ctx, s.Identity.Email, s.Password)
		if err != nil {
			t.Fatalf("%s: %v", s.Identity.Email, err)
		}
		if *id != s.Identity {
			t.Fatalf("%s: got %+v, want %+v", s.Identity.Email, *id, s.Identity)
		}
	}

	for _, a := range seeds {
		for _, b := range seeds {
			if a.Identity.Email == b.Identity.Email {
				continue
			}
			if _, err := svc.Login(ctx, a.Identity.Email, b.Password); !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("%s with %s's password: expected ErrInvalidCredentials, got %v", a.Identity.Email, b.Identity.Email, err)
			}
		}
	}

	// Byte strings that are not the password but share its bcrypt key
	// schedule when hashed raw.
	for _, s := range seeds {
		for _, pw := range []string{
			strings.Repeat(s.Password+"\x00", 10)[:72],
			s.Password + "\x00",
		} {
			if _, err := svc.Login(ctx, s.Identity.Email, pw); !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("%s with %q: expected ErrInvalidCredentials, got %v", s.Identity.Email, pw, err)
			}
		}
	}
}

func TestManagerScenario(t *testing.T) {
	repo, err := memory.NewIdentityRepository(memory.DefaultCredentials())
	if err != nil {
		t.Fatalf("identity repo: %v", err)
	}
	auth := service.NewAuthService(repo, 0, zerolog.Nop())
	ctx := context.Background()

	id, err := auth.Login(ctx, "manager@slooze.com", "manager123")
	if err != nil || id.Role != domain.RoleManager {
		t.Fatalf("manager login: %+v %v", id, err)
	}
	if _, err := auth.Login(ctx, "manager@slooze.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	var catalog ports.CatalogStore = service.NewCatalogStore(memory.DefaultProducts(), zerolog.Nop())
	before := time.Now().UTC().Truncate(time.Second)
	p := catalog.Create(domain.ProductDraft{Name: "Silver", Category: "Metals", Price: 24.10, Stock: 80})
	if p.ID == "" {
		t.Fatal("expected a generated id")
	}
	if p.LastUpdated.Before(before) {
		t.Fatalf("timestamp %s precedes the call at %s", p.LastUpdated, before)
	}
	if got, ok := catalog.Get(p.ID); !ok || got != p {
		t.Fatalf("Get after Create: %+v %v", got, ok)
	}
}
