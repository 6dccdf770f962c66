package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cantina-pos/internal/common"
	"cantina-pos/internal/dbx"
	"cantina-pos/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	query :=
		`INSERT INTO products (name, price_cents, stock)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		product.Name, product.PriceCents, product.Stock).Scan(&product.ID, &product.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return product, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query :=
		`SELECT id, name, price_cents, stock, image_key, created_at FROM products
		 WHERE id = $1
		 `

	p := &models.Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.PriceCents, &p.Stock, &p.ImageKey, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Product, error) {
	query :=
		`SELECT id, name, price_cents, stock, image_key, created_at FROM products
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Stock, &p.ImageKey, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, p)
	}

	return items, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, product *models.Product) error {
	query :=
		`UPDATE products SET name = $2, price_cents = $3, stock = $4
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		product.ID, product.Name, product.PriceCents, product.Stock)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireRow(res)
}

func (r *PostgresRepository) SetImageKey(ctx context.Context, id, imageKey string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET image_key = $2 WHERE id = $1`, id, imageKey)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireRow(res)
}

// DecrementStock guards the decrement with a stock check in the same
// statement, so concurrent sales cannot drive stock negative.
func (r *PostgresRepository) DecrementStock(ctx context.Context, id string, qty int) error {
	query :=
		`UPDATE products SET stock = stock - $2
		 WHERE id = $1 AND stock >= $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, qty)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorInsufficientStock
	}

	return nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
