package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dejobratic/inventory/internal/inventory/app/commands"
	"github.com/dejobratic/inventory/internal/inventory/app/queries"
	"github.com/dejobratic/inventory/internal/inventory/domain"
	"github.com/dejobratic/inventory/internal/inventory/metrics"
	"github.com/dejobratic/inventory/internal/inventory/ports"
	"github.com/shopspring/decimal"
)

// Service bundles the product and order use cases exposed by the API.
type Service struct {
	products  ports.ProductStore
	orders    ports.OrderStore
	idemStore ports.IdempotencyStore
	logger    *slog.Logger
	metrics   *metrics.Metrics

	createProductHandler *commands.CreateProductCommandHandler
	updateProductHandler *commands.UpdateProductCommandHandler
	createOrderHandler   commands.CommandHandler
	updateOrderHandler   *commands.UpdateOrderCommandHandler
	getProductHandler    *queries.GetProductQueryHandler
	filterOrdersHandler  *queries.FilterOrdersQueryHandler
}

// NewService wires required dependencies.
func NewService(
	products ports.ProductStore,
	orders ports.OrderStore,
	idem ports.IdempotencyStore,
	logger *slog.Logger,
	metrics *metrics.Metrics,
) *Service {
	coreCreateOrder := commands.NewCreateOrderCommandHandler(orders)

	return &Service{
		products:  products,
		orders:    orders,
		idemStore: idem,
		logger:    logger,
		metrics:   metrics,

		createProductHandler: commands.NewCreateProductCommandHandler(products),
		updateProductHandler: commands.NewUpdateProductCommandHandler(products),
		createOrderHandler:   commands.NewObservableCommandHandler(coreCreateOrder, logger, metrics),
		updateOrderHandler:   commands.NewUpdateOrderCommandHandler(orders),
		getProductHandler:    queries.NewGetProductQueryHandler(products),
		filterOrdersHandler:  queries.NewFilterOrdersQueryHandler(orders),
	}
}

// ProductInput captures the payload for creating or replacing a product.
type ProductInput struct {
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Weight      decimal.NullDecimal `json:"weight"`
	Height      decimal.NullDecimal `json:"height"`
	Width       decimal.NullDecimal `json:"width"`
	Length      decimal.NullDecimal `json:"length"`
}

func (in ProductInput) command() commands.CreateProductCommand {
	return commands.CreateProductCommand{
		Name:        in.Name,
		Description: in.Description,
		Weight:      in.Weight,
		Height:      in.Height,
		Width:       in.Width,
		Length:      in.Length,
	}
}

func (s *Service) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	return s.createProductHandler.Handle(ctx, input.command())
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, input ProductInput) (*domain.Product, error) {
	return s.updateProductHandler.Handle(ctx, commands.UpdateProductCommand{
		ID:                   id,
		CreateProductCommand: input.command(),
	})
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	return s.products.Delete(ctx, id)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.getProductHandler.Handle(ctx, queries.GetProductQuery{ID: id})
}

func (s *Service) GetProductByName(ctx context.Context, name string) (*domain.Product, error) {
	return s.getProductHandler.Handle(ctx, queries.GetProductQuery{Name: name})
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.GetAll(ctx)
}

// OrderInput captures the payload for creating or replacing an order.
type OrderInput struct {
	ProductID   int64     `json:"product_id"`
	Status      string    `json:"status"`
	CreatedDate time.Time `json:"created_date"`
	UpdatedDate time.Time `json:"updated_date"`
}

func (s *Service) CreateOrder(ctx context.Context, input OrderInput) (*domain.Order, error) {
	return s.createOrderHandler.Handle(ctx, commands.CreateOrderCommand{
		ProductID:   input.ProductID,
		Status:      input.Status,
		CreatedDate: input.CreatedDate,
		UpdatedDate: input.UpdatedDate,
	})
}

func (s *Service) UpdateOrder(ctx context.Context, id int64, input OrderInput) (*domain.Order, error) {
	return s.updateOrderHandler.Handle(ctx, commands.UpdateOrderCommand{
		ID:          id,
		ProductID:   input.ProductID,
		Status:      input.Status,
		CreatedDate: input.CreatedDate,
		UpdatedDate: input.UpdatedDate,
	})
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	return s.orders.Delete(ctx, id)
}

func (s *Service) FilterOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	return s.filterOrdersHandler.Handle(ctx, queries.FilterOrdersQuery{Filter: filter})
}

// DeleteOrders removes every order matching the filter. An empty filter is
// rejected unless all is set.
func (s *Service) DeleteOrders(ctx context.Context, filter domain.OrderFilter, all bool) error {
	if err := queries.ValidateFilter(filter); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrInvalidInput, err)
	}
	if filter.IsEmpty() && !all {
		return fmt.Errorf("%w: %w", ports.ErrInvalidInput, errors.New("at least one filter is required"))
	}

	err := s.orders.DeleteOrdersBulk(ctx, filter)
	s.metrics.RecordBulkDelete(ctx, err == nil, !filter.IsEmpty())
	if err != nil {
		s.logger.ErrorContext(ctx, "bulk order delete failed", "error", err)
		return err
	}

	s.logger.InfoContext(ctx, "orders deleted in bulk", "filtered", !filter.IsEmpty())
	return nil
}

// SaveIdempotentResponse writes response details for a key.
func (s *Service) SaveIdempotentResponse(ctx context.Context, key string, response ports.StoredResponse) error {
	return s.idemStore.Save(ctx, key, response)
}

// GetIdempotentResponse retrieves previously stored response data.
func (s *Service) GetIdempotentResponse(ctx context.Context, key string) (*ports.StoredResponse, error) {
	return s.idemStore.Get(ctx, key)
}
