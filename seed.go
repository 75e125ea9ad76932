package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

type seedRepos struct {
	products      repositories.ProductRepository
	orders        repositories.OrderRepository
	notifications repositories.NotificationRepository
}

// seedDemoData fills an empty catalogue with the demo products, orders and
// notifications. A catalogue that already has products is left alone.
func seedDemoData(r seedRepos) error {
	existing, err := r.products.GetAll()
	if err != nil {
		return fmt.Errorf("failed to check existing products: %w", err)
	}
	if len(existing) > 0 {
		log.Debug().Int("products", len(existing)).Msg("catalogue not empty, skipping demo data")
		return nil
	}

	date := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	products := []models.Product{
		{ID: "1", PID: "PID-001", Name: "Premium Leather Office Chair", Price: decimal.RequireFromString("299.99"), Stock: 25,
			Description: "High-quality ergonomic office chair with genuine leather upholstery.", Category: "Furniture",
			CreatedAt: date("2023-08-01T00:00:00Z"), UpdatedAt: date("2023-08-15T00:00:00Z")},
		{ID: "2", PID: "PID-002", Name: "Adjustable Standing Desk", Price: decimal.RequireFromString("449.99"), Stock: 12,
			Description: "Electric standing desk with memory settings and spacious surface.", Category: "Furniture",
			CreatedAt: date("2023-07-20T00:00:00Z"), UpdatedAt: date("2023-08-10T00:00:00Z")},
		{ID: "3", PID: "PID-003", Name: "Wireless Noise-Cancelling Headphones", Price: decimal.RequireFromString("179.99"), Stock: 38,
			Description: "Premium wireless headphones with active noise cancellation and 30-hour battery life.", Category: "Electronics",
			CreatedAt: date("2023-08-05T00:00:00Z"), UpdatedAt: date("2023-08-20T00:00:00Z")},
		{ID: "4", PID: "PID-004", Name: "Mechanical Keyboard with RGB", Price: decimal.RequireFromString("129.99"), Stock: 3,
			Description: "Mechanical gaming keyboard with customizable RGB lighting and programmable macros.", Category: "Electronics",
			CreatedAt: date("2023-06-15T00:00:00Z"), UpdatedAt: date("2023-08-18T00:00:00Z")},
		{ID: "5", PID: "PID-005", Name: "Ultrawide Curved Monitor", Price: decimal.RequireFromString("549.99"), Stock: 7,
			Description: "34-inch ultrawide curved monitor with high resolution and HDR support.", Category: "Electronics",
			CreatedAt: date("2023-07-10T00:00:00Z"), UpdatedAt: date("2023-08-12T00:00:00Z")},
	}
	for i := range products {
		products[i].Images = models.ImageList{"/placeholder.svg"}
		if err := r.products.Create(&products[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].Name, err)
		}
	}
	for id, fnsku := range map[string]string{"1": "AMZN-FNSKU-001", "2": "AMZN-FNSKU-002", "3": "AMZN-FNSKU-003"} {
		if _, err := r.products.Mask(id, fnsku); err != nil {
			return fmt.Errorf("failed to mask seeded product %s: %w", id, err)
		}
	}

	orders := []models.AmazonOrder{
		{AmazonOrderID: "AMZN-12345", MaskedProductID: "m1", Quantity: 1, OrderDate: date("2023-09-15T10:30:00Z"), Status: models.OrderStatusNew},
		{AmazonOrderID: "AMZN-12346", MaskedProductID: "m2", Quantity: 1, OrderDate: date("2023-09-14T14:20:00Z"), Status: models.OrderStatusNotified},
		{AmazonOrderID: "AMZN-12347", MaskedProductID: "m3", Quantity: 2, OrderDate: date("2023-09-14T09:15:00Z"), Status: models.OrderStatusProcessed},
	}
	for i := range orders {
		if err := r.orders.Create(&orders[i]); err != nil {
			return fmt.Errorf("failed to seed order %s: %w", orders[i].AmazonOrderID, err)
		}
	}

	now := time.Now()
	notifications := []models.Notification{
		{Type: models.NotificationAmazonOrder, Title: "New Amazon Order Received",
			Message: "Order #AMZN-12345 for Generic Premium Leather Office Chair (1 unit)", Timestamp: now.Add(-30 * time.Minute)},
		{Type: models.NotificationLowStock, Title: "Low Stock Alert",
			Message: "Mechanical Keyboard with RGB has only 3 units left", Timestamp: now.Add(-2 * time.Hour)},
		{Type: models.NotificationFBASync, Title: "Amazon FBA Sync Completed",
			Message: "Inventory successfully synchronized with Amazon FBA", Timestamp: now.Add(-24 * time.Hour), IsRead: true},
	}
	for i := range notifications {
		if err := r.notifications.Create(&notifications[i]); err != nil {
			return fmt.Errorf("failed to seed notification: %w", err)
		}
	}

	log.Info().Int("products", len(products)).Int("orders", len(orders)).Msg("seeded demo data")
	return nil
}
