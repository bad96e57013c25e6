package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dejobratic/inventory/internal/inventory/domain"
	"github.com/dejobratic/inventory/internal/inventory/ports"
)

// GetProductQuery looks a product up by ID, or by exact name when ID is zero.
type GetProductQuery struct {
	ID   int64
	Name string
}

// Validate ensures exactly one lookup key is given.
func (q GetProductQuery) Validate() error {
	hasName := strings.TrimSpace(q.Name) != ""
	switch {
	case q.ID < 0:
		return errors.New("id must be positive")
	case q.ID == 0 && !hasName:
		return errors.New("id or name is required")
	case q.ID != 0 && hasName:
		return errors.New("id and name are mutually exclusive")
	}
	return nil
}

type GetProductQueryHandler struct {
	products ports.ProductStore
}

func NewGetProductQueryHandler(products ports.ProductStore) *GetProductQueryHandler {
	return &GetProductQueryHandler{products: products}
}

func (h *GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (*domain.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrInvalidInput, err)
	}

	if query.ID != 0 {
		return h.products.GetByID(ctx, query.ID)
	}
	return h.products.GetByName(ctx, query.Name)
}
