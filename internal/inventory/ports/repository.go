package ports

import (
	"context"
	"errors"

	"github.com/dejobratic/inventory/internal/inventory/domain"
)

// ProductStore exposes persistence operations for products.
type ProductStore interface {
	// Add inserts the product and sets its store-generated ID on the same instance.
	Add(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// Update replaces every mutable field of the product with the given ID.
	// Updating an ID that does not exist is not an error.
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// Delete removes the product. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	// GetByName returns the first product with exactly this name in store order.
	GetByName(ctx context.Context, name string) (*domain.Product, error)
	GetAll(ctx context.Context) ([]domain.Product, error)
}

// OrderStore exposes persistence operations for orders.
type OrderStore interface {
	// Add inserts the order and sets its store-generated ID on the caller's record.
	Add(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id int64) error
	GetFilteredOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	DeleteOrdersBulk(ctx context.Context, filter domain.OrderFilter) error
}

var (
	// ErrNotFound is returned when a single-entity lookup finds nothing.
	ErrNotFound = errors.New("not found")

	// ErrConnection is returned when the backing store cannot be reached.
	ErrConnection = errors.New("store connection failed")

	// ErrConstraintViolation is returned when the store rejects a write.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrMapping is returned when a persisted row cannot be mapped to a record.
	ErrMapping = errors.New("row mapping failed")

	// ErrInvalidInput is returned by use cases that reject a request before
	// touching a store.
	ErrInvalidInput = errors.New("invalid input")
)
