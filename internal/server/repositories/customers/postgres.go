package customers

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

func (r *PostgresRepository) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	query :=
		`INSERT INTO customers (name, email, phone)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		customer.Name, customer.Email, customer.Phone).Scan(&customer.ID, &customer.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return customer, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Customer, error) {
	query :=
		`SELECT id, name, email, phone, created_at FROM customers
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var items []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, c)
	}

	return items, rows.Err()
}
