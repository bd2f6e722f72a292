package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
)

const unknownProductName = "Unknown Product"

type orderService struct {
	repo    ports.OrderRepository
	catalog ports.CatalogStore
}

// NewOrderService returns an OrderService that resolves product names
// through catalog at query time.
func NewOrderService(repo ports.OrderRepository, catalog ports.CatalogStore) ports.OrderService {
	return &orderService{repo: repo, catalog: catalog}
}

// List filters by status and search term, then sorts. Without an explicit
// sort the newest orders come first.
func (s *orderService) List(ctx context.Context, q ports.OrderQuery) ([]domain.OrderView, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	views := make([]domain.OrderView, 0, len(orders))
	for _, o := range orders {
		if q.Status != "" && o.Status != q.Status {
			continue
		}
		v := domain.OrderView{Order: o, ProductName: s.productName(o.ProductID)}
		if search != "" && !matchesOrder(v, search) {
			continue
		}
		views = append(views, v)
	}

	compare := orderComparator(q.SortBy)
	slices.SortStableFunc(views, func(a, b domain.OrderView) int {
		if q.Asc {
			return compare(a, b)
		}
		return compare(b, a)
	})
	return views, nil
}

func (s *orderService) productName(id string) string {
	if p, ok := s.catalog.Get(id); ok {
		return p.Name
	}
	return unknownProductName
}

func matchesOrder(v domain.OrderView, search string) bool {
	return strings.Contains(strings.ToLower(v.ProductName), search) ||
		strings.Contains(strings.ToLower(v.CreatedBy), search) ||
		strings.Contains(strings.ToLower(v.Notes), search)
}

func orderComparator(field ports.OrderSortField) func(a, b domain.OrderView) int {
	switch field {
	case ports.SortOrdersByUpdatedAt:
		return func(a, b domain.OrderView) int { return a.UpdatedAt.Compare(b.UpdatedAt) }
	case ports.SortOrdersByStatus:
		return func(a, b domain.OrderView) int { return strings.Compare(string(a.Status), string(b.Status)) }
	case ports.SortOrdersByCreatedBy:
		return func(a, b domain.OrderView) int { return compareFold(a.CreatedBy, b.CreatedBy) }
	default:
		return func(a, b domain.OrderView) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}
}
