package service

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
)

// CatalogStore is the in-memory product collection. Records keep their
// insertion order; nothing survives a restart.
type CatalogStore struct {
	mu       sync.RWMutex
	products []domain.Product
	now      func() time.Time
	newID    func() string
	logger   zerolog.Logger
}

// NewCatalogStore seeds the store with a copy of seed.
func NewCatalogStore(seed []domain.Product, logger zerolog.Logger) *CatalogStore {
	return &CatalogStore{
		products: slices.Clone(seed),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
		logger:   logger,
	}
}

// List returns every product in insertion order.
func (s *CatalogStore) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

// Get looks up a product by id.
func (s *CatalogStore) Get(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.products[i], true
	}
	return domain.Product{}, false
}

// Create appends draft under a fresh id and the current time. The draft is
// stored as given.
func (s *CatalogStore) Create(draft domain.ProductDraft) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Product{
		ID:          s.newID(),
		Name:        draft.Name,
		Category:    draft.Category,
		Price:       draft.Price,
		Stock:       draft.Stock,
		Description: draft.Description,
		LastUpdated: s.now(),
	}
	s.products = append(s.products, p)

	s.logger.Info().Str("product_id", p.ID).Str("name", p.Name).Msg("product created")
	return p
}

// Update replaces the record matching product.ID in place and re-stamps it.
func (s *CatalogStore) Update(product domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(product.ID)
	if i < 0 {
		return domain.Product{}, domain.ErrProductNotFound
	}
	product.LastUpdated = s.now()
	s.products[i] = product

	s.logger.Info().Str("product_id", product.ID).Msg("product updated")
	return product, nil
}

// Delete removes the record with id; unknown ids are ignored.
func (s *CatalogStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug().Str("product_id", id).Msg("delete of unknown product ignored")
		return
	}
	s.products = slices.Delete(s.products, i, i+1)
	s.logger.Info().Str("product_id", id).Msg("product deleted")
}

// Query filters by name substring and category, then sorts. The sort is
// stable, so ties keep insertion order.
func (s *CatalogStore) Query(q ports.ProductQuery) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	s.mu.RLock()
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		out = append(out, p)
	}
	s.mu.RUnlock()

	compare := productComparator(q.SortBy)
	slices.SortStableFunc(out, func(a, b domain.Product) int {
		if q.Desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return out
}

// Categories returns the distinct categories in first-seen order.
func (s *CatalogStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.products))
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// indexOf must be called with mu held.
func (s *CatalogStore) indexOf(id string) int {
	return slices.IndexFunc(s.products, func(p domain.Product) bool { return p.ID == id })
}

func productComparator(field ports.ProductSortField) func(a, b domain.Product) int {
	switch field {
	case ports.SortByCategory:
		return func(a, b domain.Product) int { return compareFold(a.Category, b.Category) }
	case ports.SortByPrice:
		return func(a, b domain.Product) int { return cmp.Compare(a.Price, b.Price) }
	case ports.SortByStock:
		return func(a, b domain.Product) int { return cmp.Compare(a.Stock, b.Stock) }
	case ports.SortByLastUpdated:
		return func(a, b domain.Product) int { return a.LastUpdated.Compare(b.LastUpdated) }
	default:
		return func(a, b domain.Product) int { return compareFold(a.Name, b.Name) }
	}
}

func compareFold(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
