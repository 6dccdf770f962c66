package models

import "time"

// Product is a sellable catalog item. Prices are stored in cents to avoid
// floating-point drift. ImageKey references an object in the image bucket
// and is empty until an image has been uploaded.
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Stock      int       `json:"stock"`
	ImageKey   string    `json:"image_key,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
