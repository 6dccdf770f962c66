package services

import (
	"context"
	"database/sql"
	"fmt"

	"cantina-pos/internal/common"
	"cantina-pos/internal/server/models"
	"cantina-pos/internal/server/repositories/repomanager"
)

// CustomerService manages the customer directory used to attribute sales.
type CustomerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCustomerService(db *sql.DB, repomanager repomanager.RepositoryManager) *CustomerService {
	return &CustomerService{db: db, repomanager: repomanager}
}

func (s *CustomerService) Create(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	if c.Name == "" {
		return nil, common.ErrorValidation
	}
	created, err := s.repomanager.Customers(s.db).Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error creating customer: %w", err)
	}
	return created, nil
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.repomanager.Customers(s.db).List(ctx)
}
