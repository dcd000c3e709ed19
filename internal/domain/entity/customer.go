package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a customer of the store
type Customer struct {
	ID        string         `gorm:"size:64;primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates an ID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// Record returns the read-only view of the customer used on receipts
func (c *Customer) Record() *CustomerRecord {
	return &CustomerRecord{
		DisplayName: c.Name,
		CustomerRef: Ref(c.ID),
	}
}

// CustomerRecord is a resolved customer reference
type CustomerRecord struct {
	DisplayName string `json:"display_name"`
	CustomerRef Ref    `json:"customer_ref"`
}
