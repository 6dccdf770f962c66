package sales

import (
	"context"

	"cantina-pos/internal/server/models"
)

type Repository interface {
	// Create inserts the sale header and its items. Stock adjustments are the
	// service's responsibility; the repository only persists.
	Create(ctx context.Context, sale *models.Sale) (*models.Sale, error)
	List(ctx context.Context, limit int) ([]models.Sale, error)
}
