package models

import "time"

// Notification types.
const (
	NotificationAmazonOrder = "amazon_order"
	NotificationLowStock    = "low_stock"
	NotificationFBASync     = "fba_sync"
)

// Notification is an entry in the operator's inbox.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp" gorm:"column:raised_at;index"`
	IsRead    bool      `json:"is_read"`
}
