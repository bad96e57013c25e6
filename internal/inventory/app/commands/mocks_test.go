package commands_test

import (
	"context"

	"github.com/dejobratic/inventory/internal/inventory/domain"
)

type mockOrderStore struct {
	addFn    func(ctx context.Context, order *domain.Order) error
	updateFn func(ctx context.Context, order *domain.Order) error
}

func (m *mockOrderStore) Add(ctx context.Context, order *domain.Order) error {
	if m.addFn != nil {
		return m.addFn(ctx, order)
	}
	order.ID = 1
	return nil
}

func (m *mockOrderStore) Update(ctx context.Context, order *domain.Order) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, order)
	}
	return nil
}

func (m *mockOrderStore) Delete(ctx context.Context, id int64) error {
	return nil
}

func (m *mockOrderStore) GetFilteredOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	return nil, nil
}

func (m *mockOrderStore) DeleteOrdersBulk(ctx context.Context, filter domain.OrderFilter) error {
	return nil
}
