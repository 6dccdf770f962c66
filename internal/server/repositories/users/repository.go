package users

import (
	"context"

	"cantina-pos/internal/server/models"
)

// Repository is the credential store: canonical user records keyed by id,
// with email as the unique login key.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
