package ports

import (
	"context"

	"github.com/slooze/commodities-admin/internal/core/domain"
)

// Authenticator validates credentials and issues identities.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.Identity, error)
}

// TokenIssuer turns an identity into a bearer token for stateless clients.
type TokenIssuer interface {
	Issue(identity domain.Identity) (string, error)
}
