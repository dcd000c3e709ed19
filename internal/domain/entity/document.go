package entity

import "time"

// DocumentSale is the sale header a document generator receives
type DocumentSale struct {
	CustomerName string  `json:"customer_name"`
	Total        float64 `json:"total"`
	Discount     float64 `json:"discount"`
}

// DocumentLine is one detail row a document generator receives
type DocumentLine struct {
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
}

// DocumentRequest is everything a document generator needs to render a receipt
type DocumentRequest struct {
	Sale     DocumentSale   `json:"sale"`
	Lines    []DocumentLine `json:"lines"`
	Header   ReceiptHeader  `json:"header"`
	Number   string         `json:"number"`
	IssuedAt time.Time      `json:"issued_at"`
}

// NewDocumentRequest builds the generator input from a summary
func NewDocumentRequest(summary *SaleSummary, header ReceiptHeader, number string, issuedAt time.Time) *DocumentRequest {
	lines := make([]DocumentLine, 0, len(summary.LineItems))
	for _, li := range summary.LineItems {
		lines = append(lines, DocumentLine{
			Quantity:    li.Quantity,
			Description: li.Description,
			UnitPrice:   li.UnitPrice,
		})
	}

	return &DocumentRequest{
		Sale: DocumentSale{
			CustomerName: summary.CustomerName,
			Total:        summary.Total,
			Discount:     summary.Discount,
		},
		Lines:    lines,
		Header:   header,
		Number:   number,
		IssuedAt: issuedAt,
	}
}

// Subtotal reconstructs the subtotal the same way the summary does
func (r *DocumentRequest) Subtotal() float64 {
	return r.Sale.Total + r.Sale.Discount
}

// Document is a rendered receipt file
type Document struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"-"`
}

// Alert is a user facing notification raised when an export fails
type Alert struct {
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Action  string    `json:"action"`
	At      time.Time `json:"at"`
}
