package repository

import (
	"context"

	"github.com/sangkips/receipt-api/internal/domain/entity"
)

// CustomerRepository defines the read operations receipts need on customers
type CustomerRepository interface {
	// GetByID returns (nil, nil) when no customer matches.
	GetByID(ctx context.Context, id entity.Ref) (*entity.Customer, error)
}
