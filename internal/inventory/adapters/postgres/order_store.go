package postgres

import (
	"context"
	"fmt"

	"github.com/dejobratic/inventory/internal/inventory/domain"
)

// OrderStore persists orders in the orders table. Filtered reads and bulk
// deletes go through the sp_orders_filter function and the
// sp_orders_bulk_delete procedure.
type OrderStore struct {
	db DBTX
}

func NewOrderStore(db DBTX) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) Add(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (status, created_date, updated_date, product_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	if err := s.db.QueryRow(ctx, query, orderArgs(order)...).Scan(&id); err != nil {
		return fmt.Errorf("insert order: %w", classify(err))
	}
	order.ID = id

	return nil
}

func (s *OrderStore) Update(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE orders
		SET status = $1,
		    created_date = $2,
		    updated_date = $3,
		    product_id = $4
		WHERE id = $5
	`

	args := append(orderArgs(order), order.ID)
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update order: %w", classify(err))
	}

	return nil
}

func (s *OrderStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", classify(err))
	}
	return nil
}

func (s *OrderStore) GetFilteredOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM sp_orders_filter($1::integer, $2::integer, $3::text, $4::bigint)
	`

	rows, err := s.db.Query(ctx, query, filterArgs(filter)...)
	if err != nil {
		return nil, fmt.Errorf("filter orders: %w", classify(err))
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", classify(err))
	}

	return orders, nil
}

func (s *OrderStore) DeleteOrdersBulk(ctx context.Context, filter domain.OrderFilter) error {
	query := `CALL sp_orders_bulk_delete($1::integer, $2::integer, $3::text, $4::bigint)`

	if _, err := s.db.Exec(ctx, query, filterArgs(filter)...); err != nil {
		return fmt.Errorf("bulk delete orders: %w", classify(err))
	}

	return nil
}
