package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cantina-pos/internal/common"
	"cantina-pos/internal/dbx"
	"cantina-pos/internal/server/models"
	"cantina-pos/internal/server/repositories/repomanager"
)

// SaleService records checkouts. A sale decrements stock for every line item
// and persists the header and items in a single transaction, so a sale either
// fully happens or leaves stock untouched.
type SaleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSaleService(db *sql.DB, repomanager repomanager.RepositoryManager) *SaleService {
	return &SaleService{db: db, repomanager: repomanager}
}

// SaleInput is one requested line: product and quantity. Unit prices are
// resolved server-side from the current catalog.
type SaleInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Create prices the requested items, reserves stock, and persists the sale.
func (s *SaleService) Create(ctx context.Context, customerID *string, items []SaleInput) (*models.Sale, error) {
	if len(items) == 0 {
		return nil, common.ErrorValidation
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, common.ErrorValidation
		}
	}

	var created *models.Sale

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		productRepo := s.repomanager.Products(tx)
		saleRepo := s.repomanager.Sales(tx)

		sale := &models.Sale{CustomerID: customerID}

		for _, it := range items {
			p, err := productRepo.GetByID(ctx, it.ProductID)
			if err != nil {
				return err
			}
			if err := productRepo.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
				return err
			}
			sale.Items = append(sale.Items, models.SaleItem{
				ProductID:      it.ProductID,
				Quantity:       it.Quantity,
				UnitPriceCents: p.PriceCents,
			})
			sale.TotalCents += p.PriceCents * int64(it.Quantity)
		}

		var err error
		created, err = saleRepo.Create(ctx, sale)
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorInsufficientStock) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating sale: %w", err)
	}

	return created, nil
}

func (s *SaleService) List(ctx context.Context, limit int) ([]models.Sale, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repomanager.Sales(s.db).List(ctx, limit)
}
