package memory

import (
	"context"
	"time"

	"github.com/slooze/commodities-admin/internal/core/domain"
)

// DefaultOrders returns the demo restock orders.
func DefaultOrders() []domain.Order {
	return []domain.Order{
		{
			ID: "1", ProductID: "1", Quantity: 50, Status: domain.OrderPending, CreatedBy: "Sarah Keeper",
			CreatedAt: ts("2025-04-10T14:30:00Z"), UpdatedAt: ts("2025-04-10T14:30:00Z"),
			Notes: "Urgent order for upcoming shortage",
		},
		{
			ID: "2", ProductID: "2", Quantity: 100, Status: domain.OrderApproved, CreatedBy: "Mike Handler",
			CreatedAt: ts("2025-04-09T10:15:00Z"), UpdatedAt: ts("2025-04-09T11:30:00Z"),
			Notes: "Standard restock order",
		},
		{
			ID: "3", ProductID: "3", Quantity: 25, Status: domain.OrderCompleted, CreatedBy: "Emma Thompson",
			CreatedAt: ts("2025-04-08T09:45:00Z"), UpdatedAt: ts("2025-04-08T16:20:00Z"),
		},
		{
			ID: "4", ProductID: "4", Quantity: 75, Status: domain.OrderRejected, CreatedBy: "Sarah Keeper",
			CreatedAt: ts("2025-04-07T13:20:00Z"), UpdatedAt: ts("2025-04-07T14:45:00Z"),
			Notes: "Budget constraints",
		},
	}
}

// OrderRepository is a read-only list of orders.
type OrderRepository struct {
	orders []domain.Order
}

func NewOrderRepository(orders []domain.Order) *OrderRepository {
	return &OrderRepository{orders: append([]domain.Order(nil), orders...)}
}

// List returns a copy of all orders in seed order.
func (r *OrderRepository) List(_ context.Context) ([]domain.Order, error) {
	return append([]domain.Order(nil), r.orders...), nil
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
