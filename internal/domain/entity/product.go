package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/receipt-api/pkg/money"
	"gorm.io/gorm"
)

// Product represents a product in the catalog
type Product struct {
	ID           string         `gorm:"size:64;primaryKey" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Code         string         `gorm:"size:100;index" json:"code"`
	SellingPrice int64          `gorm:"default:0" json:"selling_price"` // Stored in cents
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates an ID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetSellingPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetSellingPriceDecimal() float64 {
	return money.FromCents(p.SellingPrice)
}

// SetSellingPriceFromDecimal sets the selling price from a decimal value
func (p *Product) SetSellingPriceFromDecimal(price float64) {
	p.SellingPrice = money.ToCents(price)
}

// Record returns the read-only view of the product used on receipts
func (p *Product) Record() ProductRecord {
	return ProductRecord{
		ProductRef: Ref(p.ID),
		Name:       p.Name,
		UnitPrice:  p.GetSellingPriceDecimal(),
	}
}

// ProductRecord is a resolved product reference
type ProductRecord struct {
	ProductRef Ref     `json:"product_ref"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
}
