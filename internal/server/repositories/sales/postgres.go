package sales

import (
	"context"
	"fmt"

	"cantina-pos/internal/dbx"
	"cantina-pos/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, sale *models.Sale) (*models.Sale, error) {
	query :=
		`INSERT INTO sales (customer_id, total_cents)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		sale.CustomerID, sale.TotalCents).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	for _, item := range sale.Items {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO sale_items (sale_id, product_id, quantity, unit_price_cents)
			 VALUES ($1, $2, $3, $4)`,
			sale.ID, item.ProductID, item.Quantity, item.UnitPriceCents)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
	}

	return sale, nil
}

func (r *PostgresRepository) List(ctx context.Context, limit int) ([]models.Sale, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, customer_id, total_cents, created_at FROM sales
		 ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var items []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.TotalCents, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		if err := r.loadItems(ctx, &items[i]); err != nil {
			return nil, err
		}
	}

	return items, nil
}

func (r *PostgresRepository) loadItems(ctx context.Context, sale *models.Sale) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, quantity, unit_price_cents FROM sale_items
		 WHERE sale_id = $1`, sale.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.SaleItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPriceCents); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		sale.Items = append(sale.Items, item)
	}

	return rows.Err()
}
