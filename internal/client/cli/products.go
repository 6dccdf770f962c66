package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"cantina-pos/internal/netx"
)

// Products lists the catalog.
func (a *App) Products(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	items, err := a.catalogService.ListProducts(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(items) == 0 {
		fmt.Println("No products yet")
		return nil
	}
	for _, p := range items {
		fmt.Printf("%s  %-20s %8s  stock:%d\n", p.ID, p.Name, formatCents(p.PriceCents), p.Stock)
	}
	return nil
}

// AddProduct prompts for product fields and creates it.
func (a *App) AddProduct(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter product name", os.Stdout)
	if err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, "Enter price in cents", os.Stdout)
	if err != nil {
		return err
	}
	price, err := strconv.ParseInt(priceText, 10, 64)
	if err != nil {
		log.Printf("price must be an integer number of cents")
		return err
	}
	stockText, err := getSimpleText(a.reader, "Enter initial stock", os.Stdout)
	if err != nil {
		return err
	}
	stock, err := strconv.Atoi(stockText)
	if err != nil {
		log.Printf("stock must be an integer")
		return err
	}

	p, err := a.catalogService.CreateProduct(ctx, name, price, stock)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Created %s (%s)\n", p.Name, p.ID)
	return nil
}

// ProductImage fetches a presigned upload URL for a product image and,
// if a local file is given, uploads it right away.
func (a *App) ProductImage(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}

	key, url, err := a.catalogService.ImageUploadURL(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	path, err := getSimpleText(a.reader, "Enter image file path (empty to skip upload)", os.Stdout)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Printf("Upload key: %s\nPUT the image to:\n%s\n", key, url)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("error reading file: %v", err)
		return err
	}
	if err := netx.UploadToPresignedURL(ctx, url, data); err != nil {
		log.Printf("upload error: %v", err)
		return err
	}
	fmt.Printf("Image uploaded as %s\n", key)
	return nil
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
