package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaskedStatus is the lifecycle state of a masked listing.
type MaskedStatus string

const (
	MaskedStatusActive   MaskedStatus = "active"
	MaskedStatusInactive MaskedStatus = "inactive"
)

// MaskedProduct is the decoy listing shown on the marketplace for a real product.
// It is derived from the product row and never stored on its own.
type MaskedProduct struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	FNSKU         string          `json:"fnsku"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description"`
	Images        []string        `json:"images"`
	RealProductID string          `json:"real_product_id"`
	AmazonPrice   decimal.Decimal `json:"amazon_price"`
	AmazonFNSKU   string          `json:"amazon_fnsku"`
	Status        MaskedStatus    `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
