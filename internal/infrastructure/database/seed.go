package database

import "github.com/sangkips/receipt-api/internal/domain/entity"

// SampleCustomers returns the demo customers used by DB_SEED
func SampleCustomers() []entity.Customer {
	return []entity.Customer{
		{ID: "c-1", Name: "Ana Torres"},
		{ID: "c-2", Name: "Juan Pérez"},
	}
}

// SampleProducts returns the demo catalog used by DB_SEED. Prices are in cents.
func SampleProducts() []entity.Product {
	return []entity.Product{
		{ID: "p-1", Name: "Coffee", Code: "COF-001", SellingPrice: 250},
		{ID: "p-2", Name: "Croissant", Code: "BAK-001", SellingPrice: 175},
		{ID: "p-3", Name: "Orange Juice", Code: "JUI-001", SellingPrice: 300},
	}
}
