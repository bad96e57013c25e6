package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/dejobratic/inventory/internal/inventory/domain"
	"github.com/dejobratic/inventory/internal/inventory/ports"
	"github.com/shopspring/decimal"
)

type CreateProductCommand struct {
	Name        string
	Description *string
	Weight      decimal.NullDecimal
	Height      decimal.NullDecimal
	Width       decimal.NullDecimal
	Length      decimal.NullDecimal
}

func (c CreateProductCommand) product() domain.Product {
	return domain.Product{
		Name:        strings.TrimSpace(c.Name),
		Description: c.Description,
		Weight:      c.Weight,
		Height:      c.Height,
		Width:       c.Width,
		Length:      c.Length,
	}
}

type CreateProductCommandHandler struct {
	products ports.ProductStore
}

func NewCreateProductCommandHandler(products ports.ProductStore) *CreateProductCommandHandler {
	return &CreateProductCommandHandler{products: products}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	product := cmd.product()
	if err := product.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrInvalidInput, err)
	}

	return h.products.Add(ctx, &product)
}
