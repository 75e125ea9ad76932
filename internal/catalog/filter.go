package catalog

import (
	"fmt"
	"strings"

	"gudang/internal/models"
)

// StatusFilter restricts a list to products with or without a masked listing.
type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusMasked   StatusFilter = "masked"
	StatusUnmasked StatusFilter = "unmasked"
)

// ParseStatusFilter accepts all, masked or unmasked. Empty means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatusAll:
		return StatusAll, nil
	case StatusMasked:
		return StatusMasked, nil
	case StatusUnmasked:
		return StatusUnmasked, nil
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

// Criteria selects products from a list. The zero value matches everything.
type Criteria struct {
	Search     string
	Status     StatusFilter
	Categories []string
}

// Filter returns the products matching c, in their original order. masked is
// keyed by real product id; a missing entry means the product is unmasked.
func Filter(products []models.Product, masked map[string]models.MaskedProduct, c Criteria) []models.Product {
	search := strings.ToLower(c.Search)
	var categories map[string]struct{}
	if len(c.Categories) > 0 {
		categories = make(map[string]struct{}, len(c.Categories))
		for _, cat := range c.Categories {
			categories[cat] = struct{}{}
		}
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, search) {
			continue
		}
		if !matchesStatus(p, masked, c.Status) {
			continue
		}
		if categories != nil {
			if _, ok := categories[p.Category]; !ok {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p models.Product, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.ID), term)
}

func matchesStatus(p models.Product, masked map[string]models.MaskedProduct, status StatusFilter) bool {
	_, isMasked := masked[p.ID]
	switch status {
	case StatusMasked:
		return isMasked
	case StatusUnmasked:
		return !isMasked
	default:
		return true
	}
}
