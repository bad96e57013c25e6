package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dejobratic/inventory/internal/inventory/domain"
	"github.com/dejobratic/inventory/internal/inventory/ports"
	"github.com/jackc/pgx/v5"
)

// ProductStore persists products in the products table.
type ProductStore struct {
	db DBTX
}

func NewProductStore(db DBTX) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) Add(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, description, weight, height, width, length)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	if err := s.db.QueryRow(ctx, query, productArgs(product)...).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert product: %w", classify(err))
	}
	product.ID = id

	return product, nil
}

func (s *ProductStore) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $1,
		    description = $2,
		    weight = $3,
		    height = $4,
		    width = $5,
		    length = $6
		WHERE id = $7
	`

	args := append(productArgs(product), product.ID)
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update product: %w", classify(err))
	}

	return product, nil
}

func (s *ProductStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", classify(err))
	}
	return nil
}

func (s *ProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("select product: %w", classify(err))
	}

	return &product, nil
}

func (s *ProductStore) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1 LIMIT 1`

	product, err := scanProduct(s.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("select product by name: %w", classify(err))
	}

	return &product, nil
}

func (s *ProductStore) GetAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.db.Query(ctx, `SELECT `+productColumns+` FROM products`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", classify(err))
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", classify(err))
	}

	return products, nil
}
