package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dejobratic/inventory/internal/inventory/domain"
	"github.com/dejobratic/inventory/internal/inventory/ports"
)

type CreateOrderCommand struct {
	ProductID int64
	// Status defaults to NotStarted when empty.
	Status string
	// CreatedDate and UpdatedDate default to the handler's clock when zero.
	CreatedDate time.Time
	UpdatedDate time.Time
}

func (c CreateOrderCommand) Validate() error {
	if c.ProductID <= 0 {
		return errors.New("product_id must be positive")
	}
	if c.Status != "" {
		if _, err := domain.ParseOrderStatus(c.Status); err != nil {
			return err
		}
	}
	return nil
}

type CommandHandler interface {
	Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error)
}

type CreateOrderCommandHandler struct {
	orders ports.OrderStore
	now    func() time.Time
}

func NewCreateOrderCommandHandler(orders ports.OrderStore) *CreateOrderCommandHandler {
	return &CreateOrderCommandHandler{
		orders: orders,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrInvalidInput, err)
	}

	status := domain.StatusNotStarted
	if cmd.Status != "" {
		status = domain.OrderStatus(cmd.Status)
	}

	now := h.now()
	order := domain.Order{
		Status:      status,
		CreatedDate: orNow(cmd.CreatedDate, now),
		UpdatedDate: orNow(cmd.UpdatedDate, now),
		ProductID:   cmd.ProductID,
	}

	if err := order.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrInvalidInput, err)
	}

	if err := h.orders.Add(ctx, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func orNow(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t.UTC()
}
