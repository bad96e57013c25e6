package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dejobratic/inventory/internal/inventory/domain"
)

// OrderStore provides an in-memory order store useful for local development and tests.
type OrderStore struct {
	mu     sync.RWMutex
	nextID int64
	orders map[int64]domain.Order
}

// NewOrderStore constructs an empty in-memory order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[int64]domain.Order)}
}

// Add stores the order under a newly generated ID and sets that ID on it.
func (s *OrderStore) Add(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	order.ID = s.nextID
	s.orders[order.ID] = *order
	return nil
}

// Update overwrites the stored order when the ID exists.
func (s *OrderStore) Update(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[order.ID]; ok {
		s.orders[order.ID] = *order
	}
	return nil
}

// Delete removes the order. Missing IDs are ignored.
func (s *OrderStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, id)
	return nil
}

// GetFilteredOrders returns matching orders ordered by ID.
func (s *OrderStore) GetFilteredOrders(_ context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range s.orders {
		if filter.Matches(order) {
			result = append(result, order)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// DeleteOrdersBulk removes every order the filter matches.
func (s *OrderStore) DeleteOrdersBulk(_ context.Context, filter domain.OrderFilter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, order := range s.orders {
		if filter.Matches(order) {
			delete(s.orders, id)
		}
	}
	return nil
}
