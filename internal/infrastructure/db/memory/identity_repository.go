package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/service"
)

// SeedCredential is a plaintext entry of the static credential table.
type SeedCredential struct {
	Password string
	Identity domain.Identity
}

// DefaultCredentials returns the demo accounts.
func DefaultCredentials() []SeedCredential {
	return []SeedCredential{
		{
			Password: "manager123",
			Identity: domain.Identity{ID: "1", Email: "manager@slooze.com", Name: "John Manager", Role: domain.RoleManager},
		},
		{
			Password: "store123",
			Identity: domain.Identity{ID: "2", Email: "storekeeper@slooze.com", Name: "Sarah Keeper", Role: domain.RoleStorekeeper},
		},
	}
}

// IdentityRepository is a fixed credential table keyed by exact email.
// Passwords are hashed once at construction and never kept in clear.
type IdentityRepository struct {
	byEmail map[string]domain.Credential
}

// HashCredentials validates seeds and replaces every password with its
// bcrypt hash.
func HashCredentials(seeds []SeedCredential) ([]domain.Credential, error) {
	seen := make(map[string]struct{}, len(seeds))
	creds := make([]domain.Credential, 0, len(seeds))
	for _, s := range seeds {
		if !s.Identity.Role.Valid() {
			return nil, fmt.Errorf("seed %s: unknown role %q", s.Identity.Email, s.Identity.Role)
		}
		if _, dup := seen[s.Identity.Email]; dup {
			return nil, fmt.Errorf("seed %s: duplicate email", s.Identity.Email)
		}
		seen[s.Identity.Email] = struct{}{}

		hash, err := service.HashPassword(s.Password, bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", s.Identity.Email, err)
		}
		creds = append(creds, domain.Credential{
			Email:        s.Identity.Email,
			PasswordHash: hash,
			Identity:     s.Identity,
		})
	}
	return creds, nil
}

// NewIdentityRepository hashes seeds into an immutable table.
func NewIdentityRepository(seeds []SeedCredential) (*IdentityRepository, error) {
	creds, err := HashCredentials(seeds)
	if err != nil {
		return nil, err
	}
	byEmail := make(map[string]domain.Credential, len(creds))
	for _, c := range creds {
		byEmail[c.Email] = c
	}
	return &IdentityRepository{byEmail: byEmail}, nil
}

// FindByEmail matches email exactly (case-sensitive).
func (r *IdentityRepository) FindByEmail(_ context.Context, email string) (*domain.Credential, error) {
	cred, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return &cred, nil
}
