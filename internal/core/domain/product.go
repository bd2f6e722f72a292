package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a commodity record owned by the catalog.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Description string    `json:"description"`
	LastUpdated time.Time `json:"last_updated"`
}

// ProductDraft carries the caller-supplied fields of a product. Callers
// validate it before handing it to the catalog; the catalog stores it as is.
type ProductDraft struct {
	Name        string
	Category    string
	Price       float64
	Stock       int
	Description string
}

// Draft returns the caller-owned fields of p.
func (p Product) Draft() ProductDraft {
	return ProductDraft{
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
	}
}

// Value is the stock valuation of p.
func (p Product) Value() float64 {
	return p.Price * float64(p.Stock)
}
