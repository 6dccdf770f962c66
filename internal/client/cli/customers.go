package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Customers lists the customer directory.
func (a *App) Customers(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	items, err := a.catalogService.ListCustomers(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(items) == 0 {
		fmt.Println("No customers yet")
		return nil
	}
	for _, c := range items {
		fmt.Printf("%s  %-20s %s %s\n", c.ID, c.Name, c.Email, c.Phone)
	}
	return nil
}

// AddCustomer prompts for customer fields and creates the record.
func (a *App) AddCustomer(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter customer name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email (optional)", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone (optional)", os.Stdout)
	if err != nil {
		return err
	}

	c, err := a.catalogService.CreateCustomer(ctx, name, email, phone)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Created %s (%s)\n", c.Name, c.ID)
	return nil
}
