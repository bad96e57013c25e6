package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/dejobratic/inventory/internal/inventory/domain"
	"github.com/dejobratic/inventory/internal/inventory/ports"
)

// UpdateProductCommand replaces every field of an existing product.
type UpdateProductCommand struct {
	ID int64
	CreateProductCommand
}

type UpdateProductCommandHandler struct {
	products ports.ProductStore
}

func NewUpdateProductCommandHandler(products ports.ProductStore) *UpdateProductCommandHandler {
	return &UpdateProductCommandHandler{products: products}
}

// Handle returns ports.ErrNotFound when the product does not exist; the store
// itself treats such an update as a no-op.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID <= 0 {
		return nil, fmt.Errorf("%w: %w", ports.ErrInvalidInput, errors.New("id must be positive"))
	}

	product := cmd.product()
	product.ID = cmd.ID
	if err := product.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrInvalidInput, err)
	}

	if _, err := h.products.GetByID(ctx, cmd.ID); err != nil {
		return nil, err
	}

	return h.products.Update(ctx, &product)
}
