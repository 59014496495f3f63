package domain

import "time"

// Order is a read-only reporting view of an admin order.
type Order struct {
	GID       string      `json:"id"`
	Name      string      `json:"name"`
	CreatedAt time.Time   `json:"createdAt"`
	Lines     []OrderLine `json:"lineItems"`
}

// OrderLine references the purchased variant and product by global ID.
type OrderLine struct {
	Title      string `json:"title"`
	Quantity   int    `json:"quantity"`
	VariantGID string `json:"variantId,omitempty"`
	ProductGID string `json:"productId,omitempty"`
}
