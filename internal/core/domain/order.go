package domain

import "time"

// OrderStatus is the processing state of a restock order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "approved"
	OrderRejected  OrderStatus = "rejected"
	OrderCompleted OrderStatus = "completed"
)

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderApproved, OrderRejected, OrderCompleted:
		return true
	}
	return false
}

// Order is a restock request against a catalog product.
type Order struct {
	ID        string      `json:"id"`
	ProductID string      `json:"product_id"`
	Quantity  int         `json:"quantity"`
	Status    OrderStatus `json:"status"`
	CreatedBy string      `json:"created_by"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Notes     string      `json:"notes,omitempty"`
}

// OrderView is an order joined with the name of the product it references.
type OrderView struct {
	Order
	ProductName string `json:"product_name"`
}
