package repositories

import (
	"errors"
	"fmt"
	"time"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("created_at, id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetByFNSKU retrieves the product carrying the given identifier code.
func (r *GORMProductRepository) GetByFNSKU(fnsku string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "amazon_fnsku = ?", fnsku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with FNSKU %s: %w", fnsku, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by FNSKU %s: %w", fnsku, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Images == nil {
		product.Images = models.ImageList{}
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// editableColumns are the columns Update writes. The mask columns only
// change through Mask.
var editableColumns = []string{"name", "price", "stock", "description", "images", "category", "updated_at"}

// Update updates the editable fields of an existing product and reloads it.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Model(product).Select(editableColumns).Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	if err := r.db.First(product, "id = ?", product.ID).Error; err != nil {
		return fmt.Errorf("failed to reload product %s: %w", product.ID, err)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Mask stores the identifier code on the product row. The partial unique
// index on amazon_fnsku rejects a code another live product carries.
func (r *GORMProductRepository) Mask(id, fnsku string) (*models.Product, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var owner models.Product
		err := tx.Select("id").Where("amazon_fnsku = ? AND id <> ?", fnsku, id).First(&owner).Error
		switch {
		case err == nil:
			return fmt.Errorf("%s on product %s: %w", fnsku, owner.ID, ErrFNSKUInUse)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("failed to check fnsku %s: %w", fnsku, err)
		}

		res := tx.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]any{
			"amazon_fnsku": fnsku,
			"is_masked":    true,
			"updated_at":   time.Now(),
		})
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%s: %w", fnsku, ErrFNSKUInUse)
			}
			return fmt.Errorf("failed to mask product %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}
