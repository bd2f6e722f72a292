package ports

import (
	"context"

	"github.com/slooze/commodities-admin/internal/core/domain"
)

// IdentityRepository looks up login credentials.
// FindByEmail returns domain.ErrIdentityNotFound when no record matches.
type IdentityRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Credential, error)
}
