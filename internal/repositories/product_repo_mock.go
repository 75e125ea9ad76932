package repositories

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"gudang/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, cloneProduct(p))
	}
	slices.SortFunc(productList, func(a, b models.Product) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	product = cloneProduct(product)
	return &product, nil
}

// GetByFNSKU returns the product carrying the given identifier code.
func (r *MockProductRepository) GetByFNSKU(fnsku string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.AmazonFNSKU != "" && p.AmazonFNSKU == fnsku {
			p = cloneProduct(p)
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product with FNSKU %s: %w", fnsku, ErrNotFound)
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if _, exists := r.products[product.ID]; exists {
		return fmt.Errorf("product with ID %s already exists", product.ID)
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	if product.UpdatedAt.IsZero() {
		product.UpdatedAt = product.CreatedAt
	}
	if product.Images == nil {
		product.Images = models.ImageList{}
	}
	r.products[product.ID] = cloneProduct(*product)
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrNotFound)
	}
	product.AmazonFNSKU = stored.AmazonFNSKU
	product.IsMasked = stored.IsMasked
	product.CreatedAt = stored.CreatedAt
	product.UpdatedAt = time.Now()
	r.products[product.ID] = cloneProduct(*product)
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

// Mask stores the identifier code on the product.
func (r *MockProductRepository) Mask(id, fnsku string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	for otherID, other := range r.products {
		if otherID != id && other.AmazonFNSKU != "" && other.AmazonFNSKU == fnsku {
			return nil, fmt.Errorf("%s on product %s: %w", fnsku, otherID, ErrFNSKUInUse)
		}
	}
	product.AmazonFNSKU = fnsku
	product.IsMasked = true
	product.UpdatedAt = time.Now()
	r.products[id] = product
	product = cloneProduct(product)
	return &product, nil
}

func cloneProduct(p models.Product) models.Product {
	p.Images = slices.Clone(p.Images)
	return p
}
