package handler

import (
	"strings"

	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// productRequest is the body of create and update calls. Stock is an
// integer field, so fractional values fail at bind time.
type productRequest struct {
	Name        string  `json:"name"        validate:"required,max=200"`
	Category    string  `json:"category"    validate:"required,max=100"`
	Price       float64 `json:"price"       validate:"gt=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	Description string  `json:"description" validate:"max=2000"`
}

func (r *productRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
	r.Description = strings.TrimSpace(r.Description)
}

func (r productRequest) draft() domain.ProductDraft {
	return domain.ProductDraft{
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		Stock:       r.Stock,
		Description: r.Description,
	}
}

type listProductsQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Sort     string `query:"sort"  validate:"omitempty,oneof=name category price stock last_updated"`
	Order    string `query:"order" validate:"omitempty,oneof=asc desc"`
}

func (q listProductsQuery) toPort() ports.ProductQuery {
	return ports.ProductQuery{
		Search:   q.Search,
		Category: q.Category,
		SortBy:   ports.ProductSortField(q.Sort),
		Desc:     q.Order == "desc",
	}
}

type listProductsResponse struct {
	Data  []domain.Product `json:"data"`
	Total int              `json:"total"`
}

type categoriesResponse struct {
	Data []string `json:"data"`
}
