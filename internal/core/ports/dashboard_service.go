package ports

import (
	"context"

	"github.com/slooze/commodities-admin/internal/core/domain"
)

// DashboardService summarizes the catalog.
type DashboardService interface {
	Summary() domain.Summary
}

// PreferenceService reads and writes the display theme.
type PreferenceService interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
	ToggleTheme(ctx context.Context) (domain.Theme, error)
}
