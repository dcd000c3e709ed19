package service

import (
	"context"
	"fmt"

	"github.com/sangkips/receipt-api/internal/domain/entity"
	"github.com/sangkips/receipt-api/internal/domain/repository"
	"go.uber.org/zap"
)

// ResolutionFailure records a storage error met while resolving references.
// It never reaches the caller as an error; the affected lookup falls back to its default.
type ResolutionFailure struct {
	Query string
	Err   error
}

func (f *ResolutionFailure) Error() string {
	return fmt.Sprintf("resolve %s: %v", f.Query, f.Err)
}

func (f *ResolutionFailure) Unwrap() error {
	return f.Err
}

// Resolution holds denormalized records for one sale.
// Customer is nil when the sale has no customer or the customer could not be found.
type Resolution struct {
	Customer *entity.CustomerRecord
	Products map[entity.Ref]entity.ProductRecord
	Failures []*ResolutionFailure
}

type lookupResult[T any] struct {
	value T
	err   error
}

// ReferenceResolver resolves customer and product references against the store
type ReferenceResolver struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	logger    *zap.Logger
}

// NewReferenceResolver creates a new reference resolver
func NewReferenceResolver(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	logger *zap.Logger,
) *ReferenceResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReferenceResolver{
		customers: customers,
		products:  products,
		logger:    logger,
	}
}

// Resolve looks up the customer and all referenced products. Storage errors are
// logged and collapse to "no customer" or an empty product mapping.
func (r *ReferenceResolver) Resolve(ctx context.Context, customerRef entity.Ref, productRefs []entity.Ref) *Resolution {
	res := &Resolution{Products: map[entity.Ref]entity.ProductRecord{}}

	customer := r.lookupCustomer(ctx, customerRef)
	if customer.err != nil {
		r.recordFailure(res, "customer", customer.err, zap.String("customer_ref", customerRef.String()))
	} else {
		res.Customer = customer.value
	}

	products := r.lookupProducts(ctx, productRefs)
	if products.err != nil {
		r.recordFailure(res, "products", products.err, zap.Int("product_refs", len(productRefs)))
	} else {
		res.Products = products.value
	}

	return res
}

func (r *ReferenceResolver) lookupCustomer(ctx context.Context, ref entity.Ref) lookupResult[*entity.CustomerRecord] {
	if ref.IsZero() {
		return lookupResult[*entity.CustomerRecord]{}
	}

	customer, err := r.customers.GetByID(ctx, ref)
	if err != nil {
		return lookupResult[*entity.CustomerRecord]{err: err}
	}
	if customer == nil {
		return lookupResult[*entity.CustomerRecord]{}
	}
	return lookupResult[*entity.CustomerRecord]{value: customer.Record()}
}

func (r *ReferenceResolver) lookupProducts(ctx context.Context, refs []entity.Ref) lookupResult[map[entity.Ref]entity.ProductRecord] {
	mapping := map[entity.Ref]entity.ProductRecord{}

	ids := uniqueRefs(refs)
	if len(ids) == 0 {
		return lookupResult[map[entity.Ref]entity.ProductRecord]{value: mapping}
	}

	products, err := r.products.GetByIDs(ctx, ids)
	if err != nil {
		return lookupResult[map[entity.Ref]entity.ProductRecord]{err: err}
	}

	for i := range products {
		rec := products[i].Record()
		mapping[rec.ProductRef] = rec
	}
	return lookupResult[map[entity.Ref]entity.ProductRecord]{value: mapping}
}

func (r *ReferenceResolver) recordFailure(res *Resolution, query string, err error, fields ...zap.Field) {
	res.Failures = append(res.Failures, &ResolutionFailure{Query: query, Err: err})
	r.logger.Warn("reference resolution failed, using defaults",
		append(fields, zap.String("query", query), zap.Error(err))...)
}

// uniqueRefs drops empty and repeated references, keeping first-seen order
func uniqueRefs(refs []entity.Ref) []entity.Ref {
	seen := make(map[entity.Ref]struct{}, len(refs))
	ids := make([]entity.Ref, 0, len(refs))
	for _, ref := range refs {
		if ref.IsZero() {
			continue
		}
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		ids = append(ids, ref)
	}
	return ids
}
