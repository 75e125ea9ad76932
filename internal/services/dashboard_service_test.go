package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"
)

func TestDashboardService_StatsAt(t *testing.T) {
	products := repositories.NewMockProductRepository()
	orders := repositories.NewMockOrderRepository()
	service := services.NewDashboardService(products, orders, 0)

	require.NoError(t, products.Create(&models.Product{ID: "1", Name: "A", Price: decimal.NewFromInt(10), Stock: 5}))
	require.NoError(t, products.Create(&models.Product{ID: "2", Name: "B", Price: decimal.RequireFromString("2.50"), Stock: 6}))
	require.NoError(t, products.Create(&models.Product{ID: "3", Name: "C", Price: decimal.NewFromInt(1), Stock: 0}))
	for id, code := range map[string]string{"1": "F-1", "2": "F-2"} {
		_, err := products.Mask(id, code)
		require.NoError(t, err)
	}

	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	for _, o := range []models.AmazonOrder{
		{AmazonOrderID: "today-1", MaskedProductID: "m1", Quantity: 2, OrderDate: now.Add(-time.Hour), Status: models.OrderStatusNew},
		{AmazonOrderID: "today-2", MaskedProductID: "m2", Quantity: 4, OrderDate: now.Add(-14 * time.Hour), Status: models.OrderStatusProcessed},
		{AmazonOrderID: "yesterday", MaskedProductID: "m1", Quantity: 1, OrderDate: now.Add(-24 * time.Hour), Status: models.OrderStatusNotified},
		{AmazonOrderID: "cancelled", MaskedProductID: "m1", Quantity: 9, OrderDate: now, Status: models.OrderStatusCancelled},
		{AmazonOrderID: "gone", MaskedProductID: "m3", Quantity: 9, OrderDate: now, Status: models.OrderStatusNew},
	} {
		o := o
		require.NoError(t, orders.Create(&o))
	}

	stats, err := service.StatsAt(now)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalMaskedProducts)
	assert.Equal(t, 2, stats.LowStockCount)
	assert.Equal(t, 4, stats.AmazonOrdersToday)
	// 2*15 + 4*3.75 + 1*15
	assert.True(t, decimal.NewFromInt(60).Equal(stats.TotalSales), stats.TotalSales.String())
}

func TestDashboardService_Empty(t *testing.T) {
	service := services.NewDashboardService(repositories.NewMockProductRepository(), repositories.NewMockOrderRepository(), 5)
	stats, err := service.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalProducts)
	assert.True(t, stats.TotalSales.IsZero())
}
