package entity

import (
	"time"

	"github.com/sangkips/receipt-api/pkg/money"
)

// ReceiptHeader holds the store/business header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Receipt is a value object representing a printable receipt.
// It is NOT a database entity; it is composed from a sale summary at render time.
type Receipt struct {
	Header      ReceiptHeader `json:"header"`
	Number      string        `json:"number"`
	IssuedAt    time.Time     `json:"issued_at"`
	Customer    string        `json:"customer"`
	CustomerRef Ref           `json:"customer_ref,omitempty"`
	Items       []ReceiptItem `json:"items"`
	SubTotal    float64       `json:"sub_total"`
	Discount    float64       `json:"discount"`
	Total       float64       `json:"total"`
}

// NewReceipt lays out a summary as a receipt
func NewReceipt(summary *SaleSummary, header ReceiptHeader, number string, issuedAt time.Time) *Receipt {
	items := make([]ReceiptItem, 0, len(summary.LineItems))
	for _, li := range summary.LineItems {
		items = append(items, ReceiptItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Total:       money.LineTotal(li.Quantity, li.UnitPrice),
		})
	}

	return &Receipt{
		Header:      header,
		Number:      number,
		IssuedAt:    issuedAt,
		Customer:    summary.CustomerName,
		CustomerRef: summary.CustomerRef,
		Items:       items,
		SubTotal:    summary.Subtotal,
		Discount:    summary.Discount,
		Total:       summary.Total,
	}
}
