package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"gudang/internal/catalog"
	"gudang/internal/metrics"
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// DefaultFNSKUAttempts bounds how many codes GenerateFNSKU draws before giving up.
const DefaultFNSKUAttempts = 5

// ProductServiceDeps groups the collaborators of ProductService.
// Publisher and Notifier are optional.
type ProductServiceDeps struct {
	Repo              repositories.ProductRepository
	Generator         *catalog.Generator
	Publisher         EventPublisher
	Notifier          Notifier
	LowStockThreshold int
	FNSKUAttempts     int
}

// ProductService handles business logic related to products and their masked listings.
type ProductService struct {
	repo      repositories.ProductRepository
	gen       *catalog.Generator
	publisher EventPublisher
	notifier  Notifier
	lowStock  int
	attempts  int
}

// ProductList is a filtered product list together with the masked index of
// the whole catalogue.
type ProductList struct {
	Products []models.Product
	Masked   map[string]models.MaskedProduct
}

// NewProductService creates a new ProductService.
func NewProductService(deps ProductServiceDeps) *ProductService {
	gen := deps.Generator
	if gen == nil {
		gen = catalog.NewGenerator(nil)
	}
	attempts := deps.FNSKUAttempts
	if attempts <= 0 {
		attempts = DefaultFNSKUAttempts
	}
	lowStock := deps.LowStockThreshold
	if lowStock <= 0 {
		lowStock = models.LowStockThreshold
	}
	return &ProductService{
		repo:      deps.Repo,
		gen:       gen,
		publisher: deps.Publisher,
		notifier:  deps.Notifier,
		lowStock:  lowStock,
		attempts:  attempts,
	}
}

// LowStockThreshold reports the configured restocking threshold.
func (s *ProductService) LowStockThreshold() int {
	return s.lowStock
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates and stores a new, unmasked product. A PID is
// generated when none is given.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if product.PID == "" {
		product.PID = s.gen.GeneratePID(time.Now())
	}
	product.AmazonFNSKU = ""
	product.IsMasked = false
	if err := s.repo.Create(product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	log.Info().Str("product_id", product.ID).Str("pid", product.PID).Msg("product created")
	return nil
}

// UpdateProduct applies a partial update. Crossing the low-stock threshold
// raises a notification.
func (s *ProductService) UpdateProduct(id string, update models.ProductUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	wasLow := product.IsLowStock(s.lowStock)

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Stock != nil {
		product.Stock = *update.Stock
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Images != nil {
		product.Images = models.ImageList(update.Images)
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}

	if !wasLow && product.IsLowStock(s.lowStock) && s.notifier != nil {
		s.notifier.Notify(models.NotificationLowStock, "Low Stock Alert",
			fmt.Sprintf("%s has only %d units left", product.Name, product.Stock))
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// MaskProduct attaches an identifier code to a product. A code already used
// by a different product is rejected; re-masking replaces the product's code.
func (s *ProductService) MaskProduct(id, fnsku string) (*models.Product, error) {
	fnsku = strings.TrimSpace(fnsku)
	if fnsku == "" {
		return nil, fmt.Errorf("%w: fnsku is required", ErrInvalidInput)
	}

	owner, err := s.repo.GetByFNSKU(fnsku)
	switch {
	case err == nil && owner.ID != id:
		return nil, fmt.Errorf("%w: %s is used by product %s", ErrDuplicateFNSKU, fnsku, owner.ID)
	case err != nil && !errors.Is(err, repositories.ErrNotFound):
		return nil, err
	}

	product, err := s.repo.Mask(id, fnsku)
	if err != nil {
		if errors.Is(err, repositories.ErrFNSKUInUse) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateFNSKU, err)
		}
		return nil, err
	}
	metrics.ProductsMasked.Inc()
	log.Info().Str("product_id", id).Str("fnsku", fnsku).Msg("product masked")

	publishEvent(s.publisher, EventProductMasked, map[string]any{
		"product_id":        product.ID,
		"pid":               product.PID,
		"masked_product_id": catalog.MaskedProductID(product.ID),
		"fnsku":             fnsku,
	})
	return product, nil
}

// GenerateFNSKU returns a code not attached to any stored product, drawing
// again on collision.
func (s *ProductService) GenerateFNSKU(category, name string, masked bool) (string, error) {
	for range s.attempts {
		code := s.gen.Generate(category, name, masked)
		_, err := s.repo.GetByFNSKU(code)
		if errors.Is(err, repositories.ErrNotFound) {
			metrics.IncFNSKUGenerated(strings.SplitN(code, "-", 2)[0])
			return code, nil
		}
		if err != nil {
			return "", err
		}
		metrics.FNSKUCollisions.Inc()
		log.Debug().Str("fnsku", code).Msg("generated fnsku already in use, retrying")
	}
	return "", ErrFNSKUExhausted
}

// GenerateFNSKUForProduct proposes a masked code from a product's category and name.
func (s *ProductService) GenerateFNSKUForProduct(id string) (string, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return "", err
	}
	return s.GenerateFNSKU(product.Category, product.Name, true)
}

// ListProducts returns the products matching c.
func (s *ProductService) ListProducts(c catalog.Criteria) (*ProductList, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	masked := catalog.BuildMaskedIndex(products)
	return &ProductList{
		Products: catalog.Filter(products, masked, c),
		Masked:   masked,
	}, nil
}

// MaskedProducts returns every masked listing in catalogue order.
func (s *ProductService) MaskedProducts() ([]models.MaskedProduct, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]models.MaskedProduct, 0)
	for _, p := range products {
		if m, ok := catalog.MaskProduct(p); ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func validateProduct(p *models.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidInput)
	}
	return nil
}
