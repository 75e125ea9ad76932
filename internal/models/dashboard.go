package models

import "github.com/shopspring/decimal"

// DashboardStats summarises inventory and marketplace activity.
type DashboardStats struct {
	TotalProducts       int             `json:"total_products"`
	TotalMaskedProducts int             `json:"total_masked_products"`
	LowStockCount       int             `json:"low_stock_count"`
	AmazonOrdersToday   int             `json:"amazon_orders_today"`
	TotalSales          decimal.Decimal `json:"total_sales"`
}
