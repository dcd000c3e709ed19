package service

import (
	"math"

	"github.com/sangkips/receipt-api/internal/domain/entity"
)

// Totals is the subtotal/discount/total triple shown on a receipt
type Totals struct {
	Subtotal float64
	Discount float64
	Total    float64
}

// ReconcileLineItems builds one line item per sale item, in sale order.
// Items whose product did not resolve keep their row with a placeholder
// description and a zero price.
func ReconcileLineItems(items []entity.SaleItem, products map[entity.Ref]entity.ProductRecord) []entity.LineItem {
	lineItems := make([]entity.LineItem, 0, len(items))
	for _, item := range items {
		li := entity.LineItem{
			Quantity:    entity.Quantity(item.Quantity),
			Description: entity.UnnamedProduct,
		}

		if rec, ok := products[item.ProductRef]; ok {
			if rec.Name != "" {
				li.Description = rec.Name
			}
			if rec.UnitPrice > 0 {
				li.UnitPrice = rec.UnitPrice
			}
		}

		lineItems = append(lineItems, li)
	}
	return lineItems
}

// CalculateTotals coerces the payload amounts and reconstructs the subtotal.
// A negative total (refunds, corrections) is passed through unchanged; a
// negative discount is clamped to zero.
func CalculateTotals(total, discount any) Totals {
	d := math.Max(0, entity.Amount(discount))
	t := entity.Amount(total)
	return Totals{
		Subtotal: t + d,
		Discount: d,
		Total:    t,
	}
}

// BuildSummary assembles the sale summary. When customer is nil, or has no
// display name, fallbackName is used.
func BuildSummary(customer *entity.CustomerRecord, totals Totals, lineItems []entity.LineItem, fallbackName string) *entity.SaleSummary {
	if fallbackName == "" {
		fallbackName = entity.DefaultCustomerLabel
	}

	summary := &entity.SaleSummary{
		CustomerName: fallbackName,
		Subtotal:     totals.Subtotal,
		Discount:     totals.Discount,
		Total:        totals.Total,
		LineItems:    lineItems,
	}
	if summary.LineItems == nil {
		summary.LineItems = []entity.LineItem{}
	}

	if customer != nil {
		summary.CustomerRef = customer.CustomerRef
		if customer.DisplayName != "" {
			summary.CustomerName = customer.DisplayName
		}
	}
	return summary
}
