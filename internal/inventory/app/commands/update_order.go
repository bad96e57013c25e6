package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dejobratic/inventory/internal/inventory/domain"
	"github.com/dejobratic/inventory/internal/inventory/ports"
)

// UpdateOrderCommand replaces every field of an order. UpdatedDate defaults to
// the handler's clock when zero.
type UpdateOrderCommand struct {
	ID          int64
	ProductID   int64
	Status      string
	CreatedDate time.Time
	UpdatedDate time.Time
}

type UpdateOrderCommandHandler struct {
	orders ports.OrderStore
	now    func() time.Time
}

func NewUpdateOrderCommandHandler(orders ports.OrderStore) *UpdateOrderCommandHandler {
	return &UpdateOrderCommandHandler{
		orders: orders,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*domain.Order, error) {
	if cmd.ID <= 0 {
		return nil, fmt.Errorf("%w: %w", ports.ErrInvalidInput, errors.New("id must be positive"))
	}

	status, err := domain.ParseOrderStatus(cmd.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrInvalidInput, err)
	}

	order := domain.Order{
		ID:          cmd.ID,
		Status:      status,
		CreatedDate: cmd.CreatedDate.UTC(),
		UpdatedDate: orNow(cmd.UpdatedDate, h.now()),
		ProductID:   cmd.ProductID,
	}
	if err := order.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrInvalidInput, err)
	}

	if err := h.orders.Update(ctx, &order); err != nil {
		return nil, err
	}

	return &order, nil
}
