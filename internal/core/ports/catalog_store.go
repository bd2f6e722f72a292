package ports

import "github.com/slooze/commodities-admin/internal/core/domain"

// ProductSortField names a sortable product column.
type ProductSortField string

const (
	SortByName        ProductSortField = "name"
	SortByCategory    ProductSortField = "category"
	SortByPrice       ProductSortField = "price"
	SortByStock       ProductSortField = "stock"
	SortByLastUpdated ProductSortField = "last_updated"
)

// ProductQuery narrows and orders a catalog listing.
type ProductQuery struct {
	Search   string           // case-insensitive substring of the name
	Category string           // exact category, empty = all
	SortBy   ProductSortField // defaults to name
	Desc     bool
}

// CatalogStore owns the product collection. All calls are synchronous and
// affect at most one record.
type CatalogStore interface {
	List() []domain.Product
	Get(id string) (domain.Product, bool)
	Create(draft domain.ProductDraft) domain.Product
	// Update replaces the record with product.ID and re-stamps LastUpdated.
	// It returns domain.ErrProductNotFound when no record matches.
	Update(product domain.Product) (domain.Product, error)
	// Delete removes the record with id. Missing ids are ignored.
	Delete(id string)
	Query(q ProductQuery) []domain.Product
	Categories() []string
}
