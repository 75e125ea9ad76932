package repositories

import (
	"gudang/internal/models"
)

// OrderRepository defines the interface for marketplace order data access.
type OrderRepository interface {
	GetAll() ([]models.AmazonOrder, error)
	GetByID(id string) (*models.AmazonOrder, error)
	Create(order *models.AmazonOrder) error
	UpdateStatus(id string, status string) (*models.AmazonOrder, error)
}
