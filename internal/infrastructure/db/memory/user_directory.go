package memory

import (
	"context"

	"github.com/slooze/commodities-admin/internal/core/domain"
)

// DefaultUsers returns the demo user directory.
func DefaultUsers() []domain.Identity {
	return []domain.Identity{
		{ID: "1", Email: "manager@slooze.com", Name: "John Manager", Role: domain.RoleManager},
		{ID: "2", Email: "storekeeper@slooze.com", Name: "Sarah Keeper", Role: domain.RoleStorekeeper},
		{ID: "3", Email: "mike@slooze.com", Name: "Mike Handler", Role: domain.RoleStorekeeper},
		{ID: "4", Email: "emma@slooze.com", Name: "Emma Thompson", Role: domain.RoleStorekeeper},
	}
}

// UserDirectory is a read-only list of identities.
type UserDirectory struct {
	users []domain.Identity
}

func NewUserDirectory(users []domain.Identity) *UserDirectory {
	return &UserDirectory{users: append([]domain.Identity(nil), users...)}
}

// List returns a copy of the directory in seed order.
func (d *UserDirectory) List(_ context.Context) ([]domain.Identity, error) {
	return append([]domain.Identity(nil), d.users...), nil
}
