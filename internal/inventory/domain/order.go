package domain

import (
	"errors"
	"fmt"
	"time"
)

// OrderStatus captures the lifecycle of an order. The string value is the
// persisted representation and is case-sensitive.
type OrderStatus string

const (
	StatusNotStarted OrderStatus = "NotStarted"
	StatusInProgress OrderStatus = "InProgress"
	StatusLoading    OrderStatus = "Loading"
	StatusDone       OrderStatus = "Done"
	StatusCancelled  OrderStatus = "Cancelled"
)

// ErrUnknownOrderStatus is returned when text does not name an OrderStatus.
var ErrUnknownOrderStatus = errors.New("unknown order status")

// OrderStatuses lists every status in declaration order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusNotStarted,
		StatusInProgress,
		StatusLoading,
		StatusDone,
		StatusCancelled,
	}
}

// ParseOrderStatus converts persisted text into an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusNotStarted, StatusInProgress, StatusLoading, StatusDone, StatusCancelled:
		return OrderStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOrderStatus, s)
	}
}

// Valid reports whether s is one of the declared statuses.
func (s OrderStatus) Valid() bool {
	_, err := ParseOrderStatus(string(s))
	return err == nil
}

func (s OrderStatus) String() string {
	return string(s)
}

// Order is a request against a single product.
type Order struct {
	ID          int64       `json:"id"`
	Status      OrderStatus `json:"status"`
	CreatedDate time.Time   `json:"created_date"`
	UpdatedDate time.Time   `json:"updated_date"`
	ProductID   int64       `json:"product_id"`
}

// Validate ensures the order adheres to business constraints.
func (o Order) Validate() error {
	if !o.Status.Valid() {
		return fmt.Errorf("status: %w: %q", ErrUnknownOrderStatus, string(o.Status))
	}
	if o.ProductID <= 0 {
		return errors.New("product_id must be positive")
	}
	if o.CreatedDate.IsZero() {
		return errors.New("created_date is required")
	}
	if o.UpdatedDate.IsZero() {
		return errors.New("updated_date is required")
	}
	if o.UpdatedDate.Before(o.CreatedDate) {
		return errors.New("updated_date must not precede created_date")
	}
	return nil
}
