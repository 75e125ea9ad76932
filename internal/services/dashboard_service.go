package services

import (
	"time"

	"github.com/shopspring/decimal"

	"gudang/internal/catalog"
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// DashboardService computes the summary figures shown on the dashboard.
type DashboardService struct {
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
	lowStock    int
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(productRepo repositories.ProductRepository, orderRepo repositories.OrderRepository, lowStockThreshold int) *DashboardService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = models.LowStockThreshold
	}
	return &DashboardService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		lowStock:    lowStockThreshold,
	}
}

// Stats computes the figures as of now.
func (s *DashboardService) Stats() (*models.DashboardStats, error) {
	return s.StatsAt(time.Now())
}

// StatsAt computes the figures relative to now. Orders count as "today" when their
// order date falls on now's UTC calendar day. Sales exclude cancelled orders
// and orders whose listing no longer exists.
func (s *DashboardService) StatsAt(now time.Time) (*models.DashboardStats, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	masked := catalog.BuildMaskedIndex(products)
	stats := &models.DashboardStats{
		TotalProducts:       len(products),
		TotalMaskedProducts: len(masked),
		TotalSales:          decimal.Zero,
	}
	for _, p := range products {
		if p.IsLowStock(s.lowStock) {
			stats.LowStockCount++
		}
	}

	y, m, d := now.UTC().Date()
	for _, o := range orders {
		oy, om, od := o.OrderDate.UTC().Date()
		if oy == y && om == m && od == d {
			stats.AmazonOrdersToday++
		}
		if o.Status == models.OrderStatusCancelled {
			continue
		}
		realID, ok := catalog.RealProductID(o.MaskedProductID)
		if !ok {
			continue
		}
		if listing, ok := masked[realID]; ok {
			stats.TotalSales = stats.TotalSales.Add(listing.AmazonPrice.Mul(decimal.NewFromInt(int64(o.Quantity))))
		}
	}
	return stats, nil
}
