package ports

import (
	"context"

	"github.com/slooze/commodities-admin/internal/core/domain"
)

// UserDirectory lists the identities known to the system.
type UserDirectory interface {
	List(ctx context.Context) ([]domain.Identity, error)
}

// UserService searches the user directory.
type UserService interface {
	Search(ctx context.Context, term string) ([]domain.Identity, error)
}
