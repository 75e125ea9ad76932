package models

import "time"

// Amazon order statuses.
const (
	OrderStatusNew       = "new"
	OrderStatusNotified  = "notified"
	OrderStatusCancelled = "cancelled"
	OrderStatusProcessed = "processed"
)

// AmazonOrder is a marketplace order placed against a masked listing.
type AmazonOrder struct {
	ID              string    `json:"id"`
	AmazonOrderID   string    `json:"amazon_order_id"`
	MaskedProductID string    `json:"masked_product_id"`
	Quantity        int       `json:"quantity"`
	OrderDate       time.Time `json:"order_date"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// OrderSummary is an order joined with the names of both sides of the listing.
type OrderSummary struct {
	AmazonOrder
	MaskedProductName string `json:"masked_product_name"`
	RealProductName   string `json:"real_product_name"`
}
