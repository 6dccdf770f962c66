package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"cantina-pos/internal/client/api"
)

// Sales lists recent sales.
func (a *App) Sales(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	items, err := a.catalogService.ListSales(ctx, 20)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(items) == 0 {
		fmt.Println("No sales yet")
		return nil
	}
	for _, s := range items {
		fmt.Printf("%s  %s  total %s  (%d items)\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04"), formatCents(s.TotalCents), len(s.Items))
	}
	return nil
}

// NewSale interactively collects sale lines and submits the checkout. Pricing
// and stock checks happen server-side.
func (a *App) NewSale(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	customer, err := getSimpleText(a.reader, "Enter customer id (empty for walk-in)", os.Stdout)
	if err != nil {
		return err
	}
	var customerID *string
	if customer != "" {
		customerID = &customer
	}

	var items []api.SaleItemInput
	for {
		productID, err := getSimpleText(a.reader, "Enter product id (empty line to finish)", os.Stdout)
		if err != nil {
			return err
		}
		if productID == "" {
			break
		}
		qtyText, err := getSimpleText(a.reader, "Enter quantity", os.Stdout)
		if err != nil {
			return err
		}
		qty, err := strconv.Atoi(qtyText)
		if err != nil || qty <= 0 {
			log.Printf("quantity must be a positive integer")
			continue
		}
		items = append(items, api.SaleItemInput{ProductID: productID, Quantity: qty})
	}

	if len(items) == 0 {
		fmt.Println("Nothing to sell")
		return nil
	}

	sale, err := a.catalogService.CreateSale(ctx, customerID, items)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Sale %s recorded, total %s\n", sale.ID, formatCents(sale.TotalCents))
	return nil
}
