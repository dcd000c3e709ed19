package repository

import (
	"context"

	"github.com/sangkips/receipt-api/internal/domain/entity"
)

// ProductRepository defines the read operations receipts need on products
type ProductRepository interface {
	// GetByIDs retrieves multiple products by their IDs in a single query (prevents N+1).
	// Unknown IDs are simply absent from the result.
	GetByIDs(ctx context.Context, ids []entity.Ref) ([]entity.Product, error)
}
