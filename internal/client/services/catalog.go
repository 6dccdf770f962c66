package services

import (
	"context"

	"cantina-pos/internal/client/api"
	"cantina-pos/internal/client/models"
)

// CatalogService exposes the authenticated product, customer, and sale
// operations the terminal views need.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, name string, priceCents int64, stock int) (*models.Product, error)
	ImageUploadURL(ctx context.Context, productID string) (string, string, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	CreateCustomer(ctx context.Context, name, email, phone string) (*models.Customer, error)
	ListSales(ctx context.Context, limit int) ([]models.Sale, error)
	CreateSale(ctx context.Context, customerID *string, items []api.SaleItemInput) (*models.Sale, error)
}

type catalogService struct {
	client *api.Client
}

func NewCatalogService(client *api.Client) CatalogService {
	return &catalogService{client: client}
}

func (c *catalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return c.client.ListProducts(ctx)
}

func (c *catalogService) CreateProduct(ctx context.Context, name string, priceCents int64, stock int) (*models.Product, error) {
	return c.client.CreateProduct(ctx, name, priceCents, stock)
}

func (c *catalogService) ImageUploadURL(ctx context.Context, productID string) (string, string, error) {
	return c.client.ImageUploadURL(ctx, productID)
}

func (c *catalogService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return c.client.ListCustomers(ctx)
}

func (c *catalogService) CreateCustomer(ctx context.Context, name, email, phone string) (*models.Customer, error) {
	return c.client.CreateCustomer(ctx, name, email, phone)
}

func (c *catalogService) ListSales(ctx context.Context, limit int) ([]models.Sale, error) {
	return c.client.ListSales(ctx, limit)
}

func (c *catalogService) CreateSale(ctx context.Context, customerID *string, items []api.SaleItemInput) (*models.Sale, error) {
	return c.client.CreateSale(ctx, customerID, items)
}
