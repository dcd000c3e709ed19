package entity

// LineItem is one normalized product row on a receipt
type LineItem struct {
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
}

// SaleSummary is the normalized sale handed to document generators.
// Subtotal is always Total + Discount.
type SaleSummary struct {
	CustomerName string     `json:"customer_name"`
	CustomerRef  Ref        `json:"customer_ref,omitempty"`
	Subtotal     float64    `json:"subtotal"`
	Discount     float64    `json:"discount"`
	Total        float64    `json:"total"`
	LineItems    []LineItem `json:"line_items"`
}
