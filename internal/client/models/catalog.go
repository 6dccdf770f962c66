package models

import "time"

type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Stock      int       `json:"stock"`
	ImageKey   string    `json:"image_key"`
	CreatedAt  time.Time `json:"created_at"`
}

type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type SaleItem struct {
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type Sale struct {
	ID         string     `json:"id"`
	CustomerID *string    `json:"customer_id,omitempty"`
	TotalCents int64      `json:"total_cents"`
	Items      []SaleItem `json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
}
