package repositories

import "gudang/internal/models"

// NotificationRepository defines the interface for notification data access.
type NotificationRepository interface {
	GetAll() ([]models.Notification, error)
	Create(n *models.Notification) error
	MarkRead(id string) error
	MarkAllRead() (int, error)
}
