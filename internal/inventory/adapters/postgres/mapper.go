package postgres

import (
	"fmt"

	"github.com/dejobratic/inventory/internal/inventory/domain"
	"github.com/dejobratic/inventory/internal/inventory/ports"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	productColumns = "id, name, description, weight, height, width, length"
	orderColumns   = "id, status, created_date, updated_date, product_id"
)

// scanProduct maps one row selected with productColumns.
func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Weight,
		&p.Height,
		&p.Width,
		&p.Length,
	)
	return p, err
}

// productArgs returns the bind values for name through length, in column order.
func productArgs(p *domain.Product) []any {
	return []any{
		p.Name,
		nullableText(p.Description),
		nullableDecimal(p.Weight),
		nullableDecimal(p.Height),
		nullableDecimal(p.Width),
		nullableDecimal(p.Length),
	}
}

// scanOrder maps one row selected with orderColumns. Status text that is not a
// declared OrderStatus fails with ports.ErrMapping.
func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		o      domain.Order
		status string
	)
	if err := row.Scan(
		&o.ID,
		&status,
		&o.CreatedDate,
		&o.UpdatedDate,
		&o.ProductID,
	); err != nil {
		return domain.Order{}, err
	}

	parsed, err := domain.ParseOrderStatus(status)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: order %d: %w", ports.ErrMapping, o.ID, err)
	}
	o.Status = parsed

	return o, nil
}

// orderArgs returns the bind values for status through product_id, in column order.
// Dates are bound as UTC since the columns carry no time zone.
func orderArgs(o *domain.Order) []any {
	return []any{
		o.Status.String(),
		o.CreatedDate.UTC(),
		o.UpdatedDate.UTC(),
		o.ProductID,
	}
}

// filterArgs returns month, year, status and product id, with SQL NULL for every
// predicate that is not applied.
func filterArgs(f domain.OrderFilter) []any {
	var status any
	if s, ok := f.Status.Get(); ok {
		status = s.String()
	}
	return []any{
		optionalArg(f.Month),
		optionalArg(f.Year),
		status,
		optionalArg(f.ProductID),
	}
}

func optionalArg[T any](o domain.Optional[T]) any {
	if v, ok := o.Get(); ok {
		return v
	}
	return nil
}

func nullableText(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableDecimal(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal
}
