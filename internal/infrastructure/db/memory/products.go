package memory

import "github.com/slooze/commodities-admin/internal/core/domain"

// DefaultProducts returns the catalog the store starts with.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Organic Wheat", Category: "Grains", Price: 28.50, Stock: 150,
			Description: "Premium organic wheat from sustainable farms", LastUpdated: ts("2025-04-10T14:30:00Z")},
		{ID: "2", Name: "Crude Oil", Category: "Energy", Price: 75.20, Stock: 200,
			Description: "Barrel of crude oil, standard grade", LastUpdated: ts("2025-04-09T10:15:00Z")},
		{ID: "3", Name: "Gold", Category: "Metals", Price: 1850.75, Stock: 50,
			Description: "Gold bullion, 99.9% purity", LastUpdated: ts("2025-04-11T09:45:00Z")},
		{ID: "4", Name: "Coffee Beans", Category: "Agricultural", Price: 4.25, Stock: 500,
			Description: "Arabica coffee beans, premium quality", LastUpdated: ts("2025-04-08T16:20:00Z")},
		{ID: "5", Name: "Natural Gas", Category: "Energy", Price: 3.15, Stock: 1000,
			Description: "Natural gas, measured in MMBtu", LastUpdated: ts("2025-04-10T11:30:00Z")},
	}
}
