package adapters

import (
	"context"

	"github.com/dejobratic/inventory/internal/database"
	"github.com/dejobratic/inventory/internal/inventory/domain"
	"github.com/dejobratic/inventory/internal/inventory/ports"
	"github.com/dejobratic/inventory/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const orderEntity = "order"

type ObservableOrderStore struct {
	store   ports.OrderStore
	metrics *database.Metrics
}

var _ ports.OrderStore = (*ObservableOrderStore)(nil)

func NewObservableOrderStore(store ports.OrderStore, metrics *database.Metrics) *ObservableOrderStore {
	return &ObservableOrderStore{
		store:   store,
		metrics: metrics,
	}
}

func (s *ObservableOrderStore) Add(ctx context.Context, order *domain.Order) error {
	return observe(ctx, s.metrics, "OrderStore.Add", orderEntity, "add",
		[]attribute.KeyValue{
			attribute.String("order.status", order.Status.String()),
			attribute.Int64("order.product_id", order.ProductID),
		},
		func(ctx context.Context, span trace.Span) error {
			err := s.store.Add(ctx, order)
			if err == nil {
				telemetry.AddSpanAttributes(span, attribute.Int64("order.id", order.ID))
			}
			return err
		})
}

func (s *ObservableOrderStore) Update(ctx context.Context, order *domain.Order) error {
	return observe(ctx, s.metrics, "OrderStore.Update", orderEntity, "update",
		[]attribute.KeyValue{
			attribute.Int64("order.id", order.ID),
			attribute.String("order.status", order.Status.String()),
		},
		func(ctx context.Context, _ trace.Span) error {
			return s.store.Update(ctx, order)
		})
}

func (s *ObservableOrderStore) Delete(ctx context.Context, id int64) error {
	return observe(ctx, s.metrics, "OrderStore.Delete", orderEntity, "delete",
		[]attribute.KeyValue{attribute.Int64("order.id", id)},
		func(ctx context.Context, _ trace.Span) error {
			return s.store.Delete(ctx, id)
		})
}

func (s *ObservableOrderStore) GetFilteredOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	var orders []domain.Order
	err := observe(ctx, s.metrics, "OrderStore.GetFilteredOrders", orderEntity, "get_filtered", filterAttributes(filter),
		func(ctx context.Context, span trace.Span) error {
			var err error
			orders, err = s.store.GetFilteredOrders(ctx, filter)
			if err == nil {
				telemetry.AddSpanAttributes(span, attribute.Int("result.count", len(orders)))
			}
			return err
		})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *ObservableOrderStore) DeleteOrdersBulk(ctx context.Context, filter domain.OrderFilter) error {
	return observe(ctx, s.metrics, "OrderStore.DeleteOrdersBulk", orderEntity, "delete_bulk", filterAttributes(filter),
		func(ctx context.Context, _ trace.Span) error {
			return s.store.DeleteOrdersBulk(ctx, filter)
		})
}
