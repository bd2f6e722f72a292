package ports

import (
	"context"

	"github.com/slooze/commodities-admin/internal/core/domain"
)

// SessionStore holds the current client's identity and mirrors it into a
// durable slot so it survives restarts.
type SessionStore interface {
	Restore(ctx context.Context) (*domain.Identity, error)
	Set(ctx context.Context, identity domain.Identity) error
	Clear(ctx context.Context) error
	Current() domain.Session
}
