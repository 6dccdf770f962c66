package customers

import (
	"context"

	"cantina-pos/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
}
