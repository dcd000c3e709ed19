package service

import (
	"context"
	"errors"
	"sync"

	"github.com/sangkips/receipt-api/internal/domain/entity"
)

var errStoreDown = errors.New("store unavailable")

// memoryStore is an in-memory customer and product repository that records its queries
type memoryStore struct {
	mu          sync.Mutex
	customers   map[entity.Ref]entity.Customer
	products    map[entity.Ref]entity.Product
	customerErr error
	productErr  error

	customerCalls []entity.Ref
	productCalls  [][]entity.Ref
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		customers: map[entity.Ref]entity.Customer{},
		products:  map[entity.Ref]entity.Product{},
	}
}

func (s *memoryStore) addCustomer(id, name string) *memoryStore {
	s.customers[entity.Ref(id)] = entity.Customer{ID: id, Name: name}
	return s
}

// addProduct stores a product priced in whole currency units
func (s *memoryStore) addProduct(id, name string, price float64) *memoryStore {
	p := entity.Product{ID: id, Name: name}
	p.SetSellingPriceFromDecimal(price)
	s.products[entity.Ref(id)] = p
	return s
}

func (s *memoryStore) GetByID(_ context.Context, id entity.Ref) (*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customerCalls = append(s.customerCalls, id)
	if s.customerErr != nil {
		return nil, s.customerErr
	}
	c, ok := s.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *memoryStore) GetByIDs(_ context.Context, ids []entity.Ref) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productCalls = append(s.productCalls, append([]entity.Ref(nil), ids...))
	if s.productErr != nil {
		return nil, s.productErr
	}
	var out []entity.Product
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// resolver builds a resolver reading both repositories from the store
func (s *memoryStore) resolver() *ReferenceResolver {
	return NewReferenceResolver(s, s, nil)
}

type generatorFunc func(ctx context.Context, req *entity.DocumentRequest) (*entity.Document, error)

func (f generatorFunc) Generate(ctx context.Context, req *entity.DocumentRequest) (*entity.Document, error) {
	return f(ctx, req)
}

func okGenerator() generatorFunc {
	return func(_ context.Context, req *entity.DocumentRequest) (*entity.Document, error) {
		return &entity.Document{FileName: req.Number + ".pdf", ContentType: "application/pdf", Content: []byte("%PDF-")}, nil
	}
}

func failingGenerator(err error) generatorFunc {
	return func(context.Context, *entity.DocumentRequest) (*entity.Document, error) {
		return nil, err
	}
}

// recordingNotifier keeps every alert it receives
type recordingNotifier struct {
	mu     sync.Mutex
	alerts []entity.Alert
}

func (n *recordingNotifier) Notify(_ context.Context, alert entity.Alert) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, alert)
}

func (n *recordingNotifier) received() []entity.Alert {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]entity.Alert(nil), n.alerts...)
}
