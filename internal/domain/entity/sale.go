package entity

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

const (
	// UnnamedProduct describes a line whose product reference did not resolve
	UnnamedProduct = "unnamed product"
	// DefaultCustomerLabel is printed when the sale has no resolvable customer
	DefaultCustomerLabel = "Consumidor Final"
)

// SaleItem references a product sold and the quantity sold
type SaleItem struct {
	ProductRef Ref `json:"product_ref"`
	Quantity   any `json:"quantity"`
}

// SalePayload describes a completed sale as supplied by the caller.
// Amounts are loosely typed: numbers, numeric strings and null are accepted.
type SalePayload struct {
	Total       any        `json:"total"`
	Discount    any        `json:"discount,omitempty"`
	Items       []SaleItem `json:"items,omitempty"`
	CustomerRef Ref        `json:"customer_ref,omitempty"`
}

// ProductRefs returns the product reference of every item, in item order
func (p *SalePayload) ProductRefs() []Ref {
	refs := make([]Ref, 0, len(p.Items))
	for _, item := range p.Items {
		refs = append(refs, item.ProductRef)
	}
	return refs
}

// Amount coerces a loosely typed amount to a finite number. Anything that is
// not numeric yields 0.
func Amount(v any) float64 {
	switch t := v.(type) {
	case bool:
		return 0
	case string:
		v = strings.TrimSpace(t)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Quantity coerces a loosely typed quantity to a non-negative integer,
// truncating fractions.
func Quantity(v any) int {
	f := Amount(v)
	if f <= 0 {
		return 0
	}
	if f >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
