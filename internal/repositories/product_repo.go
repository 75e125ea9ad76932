package repositories

import (
	"gudang/internal/models"
)

// ProductRepository defines the interface for product data access.
// GetAll returns products ordered by creation time, then ID.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetByFNSKU(fnsku string) (*models.Product, error)
	Create(product *models.Product) error
	// Update writes the editable fields. The identifier code and mask flag
	// are left as stored and copied back into product.
	Update(product *models.Product) error
	Delete(id string) error
	// Mask attaches an identifier code to a product and flags it as masked.
	// A code carried by another product fails with ErrFNSKUInUse.
	Mask(id, fnsku string) (*models.Product, error)
}
