package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cantina-pos/internal/common"
	sc "cantina-pos/internal/server/config"
	"cantina-pos/internal/server/models"
	"cantina-pos/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ProductService manages the product catalog and presigned uploads for
// product images.
type ProductService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewProductService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *ProductService {
	return &ProductService{
		db:          db,
		repomanager: repomanager,
		config:      config,
	}
}

// ImageStorageKey generates a date-partitioned object key for a product image.
func ImageStorageKey(productID string) string {
	d := time.Now()
	return fmt.Sprintf("products/%d/%d/%d/%s/%v", d.Year(), d.Month(), d.Day(), productID, uuid.New())
}

func (s *ProductService) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	if p.Name == "" || p.PriceCents < 0 || p.Stock < 0 {
		return nil, common.ErrorValidation
	}
	created, err := s.repomanager.Products(s.db).Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("error creating product: %w", err)
	}
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.repomanager.Products(s.db).GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.repomanager.Products(s.db).List(ctx)
}

func (s *ProductService) Update(ctx context.Context, p *models.Product) error {
	if p.Name == "" || p.PriceCents < 0 || p.Stock < 0 {
		return common.ErrorValidation
	}
	return s.repomanager.Products(s.db).Update(ctx, p)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Products(s.db).Delete(ctx, id)
}

func (s *ProductService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return s3.NewPresignClient(client), nil
}

// GetImageUploadURL verifies the product exists, generates a storage key,
// records it on the product row, and returns the key with a presigned PUT URL
// the caller uploads to directly.
func (s *ProductService) GetImageUploadURL(ctx context.Context, productID string) (string, string, error) {
	repo := s.repomanager.Products(s.db)

	if _, err := repo.GetByID(ctx, productID); err != nil {
		return "", "", err
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := ImageStorageKey(productID)

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	if err := repo.SetImageKey(ctx, productID, key); err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// GetImageURL returns a presigned GET URL for the product's stored image.
// Products without an uploaded image report not found.
func (s *ProductService) GetImageURL(ctx context.Context, productID string) (string, error) {
	p, err := s.repomanager.Products(s.db).GetByID(ctx, productID)
	if err != nil {
		return "", err
	}
	if p.ImageKey == "" {
		return "", common.ErrorNotFound
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &p.ImageKey,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
