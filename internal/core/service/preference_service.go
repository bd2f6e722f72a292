package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
)

// DefaultThemeKey is the slot key holding the display theme.
const DefaultThemeKey = "theme"

// PreferenceService stores the display theme in a durable slot.
type PreferenceService struct {
	slot ports.Slot
	key  string
}

func NewPreferenceService(slot ports.Slot) *PreferenceService {
	return &PreferenceService{slot: slot, key: DefaultThemeKey}
}

// Theme returns the stored theme, falling back to light.
func (s *PreferenceService) Theme(ctx context.Context) (domain.Theme, error) {
	raw, err := s.slot.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ports.ErrSlotEmpty) {
			return domain.ThemeLight, nil
		}
		return "", fmt.Errorf("read theme: %w", err)
	}
	theme := domain.Theme(raw)
	if !theme.Valid() {
		return domain.ThemeLight, nil
	}
	return theme, nil
}

func (s *PreferenceService) SetTheme(ctx context.Context, theme domain.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("set theme: unknown theme %q", theme)
	}
	if err := s.slot.Put(ctx, s.key, []byte(theme)); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}

// ToggleTheme flips and persists the theme, returning the new value.
func (s *PreferenceService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	current, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}
	next := current.Toggle()
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
