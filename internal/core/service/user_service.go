package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
)

type userService struct {
	dir ports.UserDirectory
}

func NewUserService(dir ports.UserDirectory) ports.UserService {
	return &userService{dir: dir}
}

// Search matches term against name or email, ignoring case. An empty term
// returns everyone.
func (s *userService) Search(ctx context.Context, term string) ([]domain.Identity, error) {
	users, err := s.dir.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return users, nil
	}

	out := make([]domain.Identity, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), term) || strings.Contains(strings.ToLower(u.Email), term) {
			out = append(out, u)
		}
	}
	return out, nil
}
