package models

import "time"

// SaleItem is one line of a sale. UnitPriceCents is captured at sale time so
// later product price changes do not rewrite history.
type SaleItem struct {
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

// Sale records a completed checkout. CustomerID is nil for walk-in sales.
type Sale struct {
	ID         string     `json:"id"`
	CustomerID *string    `json:"customer_id,omitempty"`
	TotalCents int64      `json:"total_cents"`
	Items      []SaleItem `json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
}
