package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
)

// DefaultSessionKey is the slot key holding the serialized identity.
const DefaultSessionKey = "user"

// SessionStore keeps the current identity in memory and mirrors it into a
// durable slot. The session never expires; only Clear ends it.
type SessionStore struct {
	slot ports.Slot
	key  string
	log  zerolog.Logger

	mu      sync.RWMutex
	current *domain.Identity
}

// NewSessionStore starts with an absent session. Call Restore to pick up a
// previously persisted identity.
func NewSessionStore(slot ports.Slot, key string, log zerolog.Logger) *SessionStore {
	if key == "" {
		key = DefaultSessionKey
	}
	return &SessionStore{slot: slot, key: key, log: log}
}

// Restore loads the persisted identity, if any, and makes it current.
// Unreadable contents are discarded and treated as an absent session.
func (s *SessionStore) Restore(ctx context.Context) (*domain.Identity, error) {
	raw, err := s.slot.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ports.ErrSlotEmpty) {
			return nil, nil
		}
		return nil, fmt.Errorf("restore session: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil || identity.ID == "" || !identity.Role.Valid() {
		s.log.Warn().Err(err).Str("key", s.key).Msg("discarding unreadable session")
		if delErr := s.slot.Delete(ctx, s.key); delErr != nil {
			s.log.Warn().Err(delErr).Str("key", s.key).Msg("failed to delete unreadable session")
		}
		return nil, nil
	}

	s.mu.Lock()
	s.current = &identity
	s.mu.Unlock()

	restored := identity
	return &restored, nil
}

// Set persists identity and makes it current. Memory is only updated once
// the slot write succeeded.
func (s *SessionStore) Set(ctx context.Context, identity domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	if err := s.slot.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("set session: %w", err)
	}

	s.mu.Lock()
	s.current = &identity
	s.mu.Unlock()
	return nil
}

// Clear drops the identity from memory and from the slot.
func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.slot.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Current returns a snapshot of the session.
func (s *SessionStore) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.NewSession(s.current)
}
