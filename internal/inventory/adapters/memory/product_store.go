package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dejobratic/inventory/internal/inventory/domain"
	"github.com/dejobratic/inventory/internal/inventory/ports"
)

// ProductStore provides an in-memory product store useful for local development and tests.
type ProductStore struct {
	mu       sync.RWMutex
	nextID   int64
	products map[int64]domain.Product
}

// NewProductStore constructs an empty in-memory product store.
func NewProductStore() *ProductStore {
	return &ProductStore{products: make(map[int64]domain.Product)}
}

// Add stores the product under a newly generated ID and sets that ID on it.
func (s *ProductStore) Add(_ context.Context, product *domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	product.ID = s.nextID
	s.products[product.ID] = cloneProduct(*product)
	return product, nil
}

// Update overwrites the stored product when the ID exists.
func (s *ProductStore) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; ok {
		s.products[product.ID] = cloneProduct(*product)
	}
	return product, nil
}

// Delete removes the product. Missing IDs are ignored.
func (s *ProductStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, id)
	return nil
}

// GetByID fetches a single product by identifier.
func (s *ProductStore) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := cloneProduct(product)
	return &clone, nil
}

// GetByName returns the product with the lowest ID among exact name matches.
func (s *ProductStore) GetByName(_ context.Context, name string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, product := range s.sorted() {
		if product.Name == name {
			clone := cloneProduct(product)
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

// GetAll returns every product ordered by ID.
func (s *ProductStore) GetAll(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Product, 0, len(s.products))
	for _, product := range s.sorted() {
		result = append(result, cloneProduct(product))
	}
	return result, nil
}

func (s *ProductStore) sorted() []domain.Product {
	result := make([]domain.Product, 0, len(s.products))
	for _, product := range s.products {
		result = append(result, product)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// cloneProduct detaches the description pointer from the caller's copy.
func cloneProduct(p domain.Product) domain.Product {
	if p.Description != nil {
		desc := *p.Description
		p.Description = &desc
	}
	return p
}
