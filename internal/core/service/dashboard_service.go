package service

import (
	"cmp"
	"slices"

	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
)

type dashboardService struct {
	catalog           ports.CatalogStore
	lowStockThreshold int
}

// NewDashboardService summarizes catalog. Products whose stock is below
// lowStockThreshold count as low stock; non-positive thresholds fall back to
// domain.DefaultLowStockThreshold.
func NewDashboardService(catalog ports.CatalogStore, lowStockThreshold int) ports.DashboardService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = domain.DefaultLowStockThreshold
	}
	return &dashboardService{catalog: catalog, lowStockThreshold: lowStockThreshold}
}

func (s *dashboardService) Summary() domain.Summary {
	products := s.catalog.List()

	sum := domain.Summary{TotalProducts: len(products)}
	byCategory := make(map[string]int)
	for _, p := range products {
		sum.TotalStock += p.Stock
		sum.TotalValue += p.Value()
		if p.Stock < s.lowStockThreshold {
			sum.LowStockCount++
		}

		i, ok := byCategory[p.Category]
		if !ok {
			i = len(sum.Categories)
			byCategory[p.Category] = i
			sum.Categories = append(sum.Categories, domain.CategoryValue{Category: p.Category})
		}
		sum.Categories[i].Value += p.Value()
	}

	slices.SortStableFunc(sum.Categories, func(a, b domain.CategoryValue) int {
		return cmp.Compare(b.Value, a.Value)
	})
	return sum
}
