package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
)

// DefaultLoginDelay models the round trip of a remote identity provider.
const DefaultLoginDelay = 800 * time.Millisecond

// AuthService implements login against an identity repository.
type AuthService struct {
	repo  ports.IdentityRepository
	delay time.Duration
	sleep func(time.Duration)
	log   zerolog.Logger
}

// NewAuthService returns an AuthService that waits delay on every login,
// successful or not. A negative delay is treated as zero.
func NewAuthService(repo ports.IdentityRepository, delay time.Duration, log zerolog.Logger) *AuthService {
	if delay < 0 {
		delay = 0
	}
	return &AuthService{repo: repo, delay: delay, sleep: time.Sleep, log: log}
}

// Login waits the configured delay and then checks email and password for an
// exact match. The wait is not interrupted by ctx.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	s.sleep(s.delay)

	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	cred, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			s.log.Info().Str("email", email).Msg("login rejected: unknown email")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !PasswordMatches(cred.PasswordHash, password) {
		s.log.Info().Str("email", email).Msg("login rejected: wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	identity := cred.Identity
	s.log.Info().Str("user_id", identity.ID).Str("role", string(identity.Role)).Msg("login succeeded")
	return &identity, nil
}
