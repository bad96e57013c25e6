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

const productEntity = "product"

type ObservableProductStore struct {
	store   ports.ProductStore
	metrics *database.Metrics
}

var _ ports.ProductStore = (*ObservableProductStore)(nil)

func NewObservableProductStore(store ports.ProductStore, metrics *database.Metrics) *ObservableProductStore {
	return &ObservableProductStore{
		store:   store,
		metrics: metrics,
	}
}

func (s *ObservableProductStore) Add(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	var added *domain.Product
	err := observe(ctx, s.metrics, "ProductStore.Add", productEntity, "add",
		[]attribute.KeyValue{attribute.String("product.name", product.Name)},
		func(ctx context.Context, span trace.Span) error {
			var err error
			added, err = s.store.Add(ctx, product)
			if err == nil {
				telemetry.AddSpanAttributes(span, attribute.Int64("product.id", added.ID))
			}
			return err
		})
	if err != nil {
		return nil, err
	}
	return added, nil
}

func (s *ObservableProductStore) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	var updated *domain.Product
	err := observe(ctx, s.metrics, "ProductStore.Update", productEntity, "update",
		[]attribute.KeyValue{attribute.Int64("product.id", product.ID)},
		func(ctx context.Context, _ trace.Span) error {
			var err error
			updated, err = s.store.Update(ctx, product)
			return err
		})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ObservableProductStore) Delete(ctx context.Context, id int64) error {
	return observe(ctx, s.metrics, "ProductStore.Delete", productEntity, "delete",
		[]attribute.KeyValue{attribute.Int64("product.id", id)},
		func(ctx context.Context, _ trace.Span) error {
			return s.store.Delete(ctx, id)
		})
}

func (s *ObservableProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product *domain.Product
	err := observe(ctx, s.metrics, "ProductStore.GetByID", productEntity, "get_by_id",
		[]attribute.KeyValue{attribute.Int64("product.id", id)},
		func(ctx context.Context, _ trace.Span) error {
			var err error
			product, err = s.store.GetByID(ctx, id)
			return err
		})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ObservableProductStore) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	var product *domain.Product
	err := observe(ctx, s.metrics, "ProductStore.GetByName", productEntity, "get_by_name",
		[]attribute.KeyValue{attribute.String("product.name", name)},
		func(ctx context.Context, _ trace.Span) error {
			var err error
			product, err = s.store.GetByName(ctx, name)
			return err
		})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ObservableProductStore) GetAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := observe(ctx, s.metrics, "ProductStore.GetAll", productEntity, "get_all", nil,
		func(ctx context.Context, span trace.Span) error {
			var err error
			products, err = s.store.GetAll(ctx)
			if err == nil {
				telemetry.AddSpanAttributes(span, attribute.Int("result.count", len(products)))
			}
			return err
		})
	if err != nil {
		return nil, err
	}
	return products, nil
}
