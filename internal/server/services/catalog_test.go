package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cantina-pos/internal/common"
	"cantina-pos/internal/server/config"
	"cantina-pos/internal/server/models"
)

type fakeCustomersRepo struct {
	createOut *models.Customer
	createErr error
	listOut   []models.Customer
}

func (f *fakeCustomersRepo) Create(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeCustomersRepo) List(ctx context.Context) ([]models.Customer, error) {
	return f.listOut, nil
}

func TestImageStorageKey_Format(t *testing.T) {
	k1 := ImageStorageKey("p-1")
	k2 := ImageStorageKey("p-1")

	if !strings.HasPrefix(k1, "products/") || !strings.Contains(k1, "/p-1/") {
		t.Fatalf("unexpected key: %q", k1)
	}
	if k1 == k2 {
		t.Fatalf("keys should be unique, got %q twice", k1)
	}
}

func TestProductCreate_Validation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	svc := NewProductService(db, &fakeRepoManager{p: catalogFixture()}, &config.Config{})

	if _, err := svc.Create(context.Background(), &models.Product{Name: ""}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("empty name: want ErrorValidation, got %v", err)
	}
	if _, err := svc.Create(context.Background(), &models.Product{Name: "Taco", PriceCents: -1}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("negative price: want ErrorValidation, got %v", err)
	}
}

func TestProductGet_PassesThrough(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	svc := NewProductService(db, &fakeRepoManager{p: catalogFixture()}, &config.Config{})

	p, err := svc.Get(context.Background(), "p-1")
	if err != nil || p.Name != "Burrito" {
		t.Fatalf("Get: p=%+v err=%v", p, err)
	}
	if _, err := svc.Get(context.Background(), "ghost"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("missing: want ErrorNotFound, got %v", err)
	}
}

func TestGetImageUploadURL_UnknownProduct(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	svc := NewProductService(db, &fakeRepoManager{p: catalogFixture()}, &config.Config{})

	_, _, err := svc.GetImageUploadURL(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestGetImageUploadURL_RecordsKey(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := catalogFixture()
	svc := NewProductService(db, &fakeRepoManager{p: repo}, &config.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minio",
		S3RootPassword: "minio123",
		S3Bucket:       "product-images",
		S3BaseEndpoint: "http://localhost:9000",
	})

	key, url, err := svc.GetImageUploadURL(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("GetImageUploadURL error: %v", err)
	}
	if key == "" || url == "" {
		t.Fatalf("empty key/url: key=%q url=%q", key, url)
	}
	if len(repo.setKeyCalls) != 1 || repo.setKeyCalls[0] != key {
		t.Fatalf("image key not recorded: %+v", repo.setKeyCalls)
	}
}

func TestGetImageURL_NoImage(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	svc := NewProductService(db, &fakeRepoManager{p: catalogFixture()}, &config.Config{})

	if _, err := svc.GetImageURL(context.Background(), "p-1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("no image: want ErrorNotFound, got %v", err)
	}
}

func TestGetImageURL_Presigns(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := catalogFixture()
	repo.products["p-1"].ImageKey = "products/2026/8/30/p-1/abc"
	svc := NewProductService(db, &fakeRepoManager{p: repo}, &config.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minio",
		S3RootPassword: "minio123",
		S3Bucket:       "product-images",
		S3BaseEndpoint: "http://localhost:9000",
	})

	url, err := svc.GetImageURL(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("GetImageURL error: %v", err)
	}
	if !strings.Contains(url, "product-images") {
		t.Fatalf("unexpected url: %q", url)
	}
}

func TestCustomerCreate_Validation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	svc := NewCustomerService(db, &fakeRepoManager{c: &fakeCustomersRepo{}})

	if _, err := svc.Create(context.Background(), &models.Customer{}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("empty name: want ErrorValidation, got %v", err)
	}
}

func TestCustomerCreate_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{c: &fakeCustomersRepo{createOut: &models.Customer{ID: "c-1", Name: "Dana"}}}
	svc := NewCustomerService(db, rm)

	c, err := svc.Create(context.Background(), &models.Customer{Name: "Dana"})
	if err != nil || c.ID != "c-1" {
		t.Fatalf("Create: c=%+v err=%v", c, err)
	}
}
