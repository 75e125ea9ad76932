package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Prices travel as JSON numbers, the way the dashboard reads them.
	decimal.MarshalJSONWithoutQuotes = true
}

// LowStockThreshold is the stock level at or below which a product needs restocking.
const LowStockThreshold = 5

// Product represents a real inventory item.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PID         string          `json:"pid" gorm:"uniqueIndex;type:varchar(64)"`
	Name        string          `json:"name" gorm:"index"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(12,2)"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	Images      ImageList       `json:"images" gorm:"type:text"`
	Category    string          `json:"category" gorm:"index"`
	AmazonFNSKU string          `json:"amazon_fnsku,omitempty" gorm:"type:varchar(64);uniqueIndex:idx_products_live_fnsku,where:amazon_fnsku <> '' AND deleted_at IS NULL"`
	IsMasked    bool            `json:"is_masked"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`
}

// IsLowStock reports whether the product is at or below threshold.
func (p Product) IsLowStock(threshold int) bool {
	return p.Stock <= threshold
}

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Images      []string         `json:"images" validate:"omitempty,dive,required"`
	Category    *string          `json:"category" validate:"omitempty,min=1,max=100"`
}
