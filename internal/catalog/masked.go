package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"gudang/internal/models"
)

const maskedIDPrefix = "m"

// AmazonMarkup is applied to the real price to get the marketplace price.
var AmazonMarkup = decimal.NewFromFloat(1.5)

// MaskedProductID returns the listing id for a real product id.
func MaskedProductID(realID string) string {
	return maskedIDPrefix + realID
}

// RealProductID reverses MaskedProductID.
func RealProductID(maskedID string) (string, bool) {
	id, ok := strings.CutPrefix(maskedID, maskedIDPrefix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// MaskProduct derives the decoy listing for p. The second result is false when
// p carries no identifier code.
func MaskProduct(p models.Product) (models.MaskedProduct, bool) {
	if p.AmazonFNSKU == "" {
		return models.MaskedProduct{}, false
	}
	images := make([]string, len(p.Images))
	copy(images, p.Images)
	return models.MaskedProduct{
		ID:            MaskedProductID(p.ID),
		Name:          "Generic " + p.Name,
		FNSKU:         p.AmazonFNSKU,
		Price:         p.Price,
		Description:   "Generic version of " + p.Description,
		Images:        images,
		RealProductID: p.ID,
		AmazonPrice:   p.Price.Mul(AmazonMarkup),
		AmazonFNSKU:   p.AmazonFNSKU,
		Status:        listingStatus(p),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}, true
}

// listingStatus takes a listing offline while the real product is out of stock.
func listingStatus(p models.Product) models.MaskedStatus {
	if p.Stock <= 0 {
		return models.MaskedStatusInactive
	}
	return models.MaskedStatusActive
}

// BuildMaskedIndex maps real product ids to their masked listing.
func BuildMaskedIndex(products []models.Product) map[string]models.MaskedProduct {
	index := make(map[string]models.MaskedProduct, len(products))
	for _, p := range products {
		if m, ok := MaskProduct(p); ok {
			index[p.ID] = m
		}
	}
	return index
}
