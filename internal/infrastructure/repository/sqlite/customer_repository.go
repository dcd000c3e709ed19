// Package sqlite implements the receipt repositories over database/sql and the
// pure Go modernc SQLite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sangkips/receipt-api/internal/domain/entity"
	domainRepo "github.com/sangkips/receipt-api/internal/domain/repository"
)

// CustomerRepository reads customers from SQLite
type CustomerRepository struct {
	db *sql.DB
}

var _ domainRepo.CustomerRepository = (*CustomerRepository)(nil)

// NewCustomerRepository creates a new SQLite customer repository
func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) GetByID(ctx context.Context, id entity.Ref) (*entity.Customer, error) {
	if id.IsZero() {
		return nil, nil
	}

	var (
		customer     entity.Customer
		email, phone sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, phone FROM customers WHERE id = ? AND deleted_at IS NULL",
		id.String(),
	).Scan(&customer.ID, &customer.Name, &email, &phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get customer %q: %w", id, err)
	}

	if email.Valid {
		customer.Email = &email.String
	}
	if phone.Valid {
		customer.Phone = &phone.String
	}
	return &customer, nil
}
