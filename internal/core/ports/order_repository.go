package ports

import (
	"context"

	"github.com/slooze/commodities-admin/internal/core/domain"
)

// OrderSortField names a sortable order column.
type OrderSortField string

const (
	SortOrdersByCreatedAt OrderSortField = "created_at"
	SortOrdersByUpdatedAt OrderSortField = "updated_at"
	SortOrdersByStatus    OrderSortField = "status"
	SortOrdersByCreatedBy OrderSortField = "created_by"
)

// OrderQuery carries the listing parameters for orders.
type OrderQuery struct {
	Status domain.OrderStatus // optional
	Search string             // product name, author or notes
	SortBy OrderSortField     // defaults to created_at
	Asc    bool               // defaults to newest first
}

// OrderRepository provides read access to orders.
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
}

// OrderService lists orders joined with product names.
type OrderService interface {
	List(ctx context.Context, q OrderQuery) ([]domain.OrderView, error)
}
