package products

import (
	"context"

	"cantina-pos/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	SetImageKey(ctx context.Context, id, imageKey string) error
	// DecrementStock atomically reduces stock by qty, failing with
	// common.ErrorInsufficientStock when fewer than qty units remain.
	DecrementStock(ctx context.Context, id string, qty int) error
}
