package queries

import (
	"context"
	"errors"
	"fmt"

	"github.com/dejobratic/inventory/internal/inventory/domain"
	"github.com/dejobratic/inventory/internal/inventory/ports"
)

// FilterOrdersQuery selects orders whose present predicates all match.
type FilterOrdersQuery struct {
	Filter domain.OrderFilter
}

// Validate rejects predicates that can never match a stored order.
func (q FilterOrdersQuery) Validate() error {
	return ValidateFilter(q.Filter)
}

const maxYear = 9999

// ValidateFilter checks the ranges of every present predicate.
func ValidateFilter(f domain.OrderFilter) error {
	if month, ok := f.Month.Get(); ok && (month < 1 || month > 12) {
		return errors.New("month must be between 1 and 12")
	}
	if year, ok := f.Year.Get(); ok && (year < 1 || year > maxYear) {
		return fmt.Errorf("year must be between 1 and %d", maxYear)
	}
	if status, ok := f.Status.Get(); ok && !status.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownOrderStatus, status.String())
	}
	if productID, ok := f.ProductID.Get(); ok && productID <= 0 {
		return errors.New("product_id must be positive")
	}
	return nil
}

type FilterOrdersQueryHandler struct {
	orders ports.OrderStore
}

func NewFilterOrdersQueryHandler(orders ports.OrderStore) *FilterOrdersQueryHandler {
	return &FilterOrdersQueryHandler{orders: orders}
}

func (h *FilterOrdersQueryHandler) Handle(ctx context.Context, query FilterOrdersQuery) ([]domain.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrInvalidInput, err)
	}

	return h.orders.GetFilteredOrders(ctx, query.Filter)
}
