package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
)

type stubSlot struct {
	data   map[string][]byte
	putErr error
	getErr error
}

func newStubSlot() *stubSlot {
	return &stubSlot{data: make(map[string][]byte)}
}

func (s *stubSlot) Get(_ context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	v, ok := s.data[key]
	if !ok {
		return nil, ports.ErrSlotEmpty
	}
	return v, nil
}

func (s *stubSlot) Put(_ context.Context, key string, value []byte) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.data[key] = value
	return nil
}

func (s *stubSlot) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

var keeper = domain.Identity{ID: "2", Email: "storekeeper@slooze.com", Name: "Sarah Keeper", Role: domain.RoleStorekeeper}

func TestSessionStore_StartsAbsent(t *testing.T) {
	s := NewSessionStore(newStubSlot(), "", zerolog.Nop())

	if s.Current().Authenticated() {
		t.Fatal("new store must have no session")
	}
	id, err := s.Restore(context.Background())
	if err != nil || id != nil {
		t.Fatalf("Restore on empty slot = %+v, %v", id, err)
	}
}

func TestSessionStore_RoundTripAcrossRestart(t *testing.T) {
	ctx := context.Background()
	slot := newStubSlot()

	first := NewSessionStore(slot, DefaultSessionKey, zerolog.Nop())
	if err := first.Set(ctx, keeper); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok := slot.data["user"]; !ok {
		t.Fatalf("identity must be persisted under %q", DefaultSessionKey)
	}

	restarted := NewSessionStore(slot, DefaultSessionKey, zerolog.Nop())
	id, err := restarted.Restore(ctx)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if id == nil || *id != keeper {
		t.Fatalf("Restore = %+v, want %+v", id, keeper)
	}
	if cur := restarted.Current(); cur.Identity == nil || *cur.Identity != keeper {
		t.Fatalf("Current = %+v", cur)
	}
}

func TestSessionStore_Clear(t *testing.T) {
	ctx := context.Background()
	slot := newStubSlot()
	s := NewSessionStore(slot, "", zerolog.Nop())

	if err := s.Set(ctx, keeper); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.Current().Authenticated() {
		t.Fatal("Clear must drop the in-memory session")
	}
	if id, _ := NewSessionStore(slot, "", zerolog.Nop()).Restore(ctx); id != nil {
		t.Fatalf("Clear must drop the persisted session, restored %+v", id)
	}
}

func TestSessionStore_SetFailureKeepsPreviousSession(t *testing.T) {
	ctx := context.Background()
	slot := newStubSlot()
	s := NewSessionStore(slot, "", zerolog.Nop())
	if err := s.Set(ctx, keeper); err != nil {
		t.Fatalf("Set: %v", err)
	}

	slot.putErr = errors.New("disk full")
	manager := domain.Identity{ID: "1", Email: "manager@slooze.com", Name: "John Manager", Role: domain.RoleManager}
	if err := s.Set(ctx, manager); !errors.Is(err, slot.putErr) {
		t.Fatalf("expected wrapped put error, got %v", err)
	}
	if s.Current().Role() != domain.RoleStorekeeper {
		t.Fatal("a failed Set must not change the current session")
	}
}

func TestSessionStore_DiscardsUnreadableSlot(t *testing.T) {
	cases := map[string]string{
		"not json":     `{"id":`,
		"missing id":   `{"email":"x@slooze.com","role":"manager"}`,
		"unknown role": `{"id":"9","email":"x@slooze.com","role":"admin"}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			slot := newStubSlot()
			slot.data[DefaultSessionKey] = []byte(raw)
			s := NewSessionStore(slot, "", zerolog.Nop())

			id, err := s.Restore(context.Background())
			if err != nil || id != nil {
				t.Fatalf("Restore = %+v, %v; want absent", id, err)
			}
			if _, ok := slot.data[DefaultSessionKey]; ok {
				t.Fatal("unreadable contents must be removed")
			}
		})
	}
}

func TestSessionStore_RestoreSlotError(t *testing.T) {
	slot := newStubSlot()
	slot.getErr = errors.New("connection reset")
	s := NewSessionStore(slot, "", zerolog.Nop())

	if _, err := s.Restore(context.Background()); !errors.Is(err, slot.getErr) {
		t.Fatalf("expected wrapped get error, got %v", err)
	}
}

func TestSessionStore_CurrentIsSnapshot(t *testing.T) {
	s := NewSessionStore(newStubSlot(), "", zerolog.Nop())
	if err := s.Set(context.Background(), keeper); err != nil {
		t.Fatalf("Set: %v", err)
	}

	snap := s.Current()
	snap.Identity.Role = domain.RoleManager
	if s.Current().Role() != domain.RoleStorekeeper {
		t.Fatal("mutating a snapshot must not escalate the stored session")
	}
}

func TestPreferenceService_Theme(t *testing.T) {
	ctx := context.Background()
	slot := newStubSlot()
	prefs := NewPreferenceService(slot)

	if th, err := prefs.Theme(ctx); err != nil || th != domain.ThemeLight {
		t.Fatalf("default theme = %q, %v", th, err)
	}
	if th, err := prefs.ToggleTheme(ctx); err != nil || th != domain.ThemeDark {
		t.Fatalf("toggle = %q, %v", th, err)
	}
	if th, _ := NewPreferenceService(slot).Theme(ctx); th != domain.ThemeDark {
		t.Fatalf("theme must persist, got %q", th)
	}
	if err := prefs.SetTheme(ctx, "sepia"); err == nil {
		t.Fatal("expected error for unknown theme")
	}

	slot.data[DefaultThemeKey] = []byte("neon")
	if th, _ := prefs.Theme(ctx); th != domain.ThemeLight {
		t.Fatalf("unknown stored theme must read as light, got %q", th)
	}
}
