package repository

import (
	"context"
	"errors"

	"github.com/sangkips/receipt-api/internal/domain/entity"
	domainRepo "github.com/sangkips/receipt-api/internal/domain/repository"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByID(ctx context.Context, id entity.Ref) (*entity.Customer, error) {
	if id.IsZero() {
		return nil, nil
	}
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
