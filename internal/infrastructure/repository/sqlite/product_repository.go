package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sangkips/receipt-api/internal/domain/entity"
	domainRepo "github.com/sangkips/receipt-api/internal/domain/repository"
)

// ProductRepository reads products from SQLite
type ProductRepository struct {
	db *sql.DB
}

var _ domainRepo.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository creates a new SQLite product repository
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetByIDs fetches all products in one IN (...) query
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []entity.Ref) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id.String()
	}
	query := "SELECT id, name, selling_price FROM products WHERE id IN (" +
		placeholders(len(ids)) + ") AND deleted_at IS NULL"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: get products: %w", err)
	}
	defer rows.Close()

	products := make([]entity.Product, 0, len(ids))
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SellingPrice); err != nil {
			return nil, fmt.Errorf("sqlite: scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate products: %w", err)
	}
	return products, nil
}

// placeholders returns "?,?,?" for n arguments
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
