package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"gudang/internal/catalog"
	"gudang/internal/metrics"
	"gudang/internal/models"
	"gudang/internal/repositories"
)

var validOrderStatuses = map[string]bool{
	models.OrderStatusNew:       true,
	models.OrderStatusNotified:  true,
	models.OrderStatusCancelled: true,
	models.OrderStatusProcessed: true,
}

// OrderService handles marketplace orders placed against masked listings.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher
	notifier    Notifier
}

// NewOrderService creates a new OrderService. publisher and notifier may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher EventPublisher, notifier Notifier) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
		notifier:    notifier,
	}
}

// GetAllOrders retrieves all orders, newest first.
func (s *OrderService) GetAllOrders() ([]models.AmazonOrder, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.AmazonOrder, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder records an order for a masked listing. The real product behind
// the listing must be masked and hold enough stock.
func (s *OrderService) CreateOrder(req models.AmazonOrder) (*models.AmazonOrder, error) {
	if strings.TrimSpace(req.AmazonOrderID) == "" {
		return nil, fmt.Errorf("%w: amazon order id is required", ErrInvalidInput)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	realID, ok := catalog.RealProductID(req.MaskedProductID)
	if !ok {
		return nil, fmt.Errorf("%w: malformed masked product id %q", ErrInvalidInput, req.MaskedProductID)
	}

	product, err := s.productRepo.GetByID(realID)
	if err != nil {
		return nil, fmt.Errorf("masked product %s: %w", req.MaskedProductID, err)
	}
	listing, ok := catalog.MaskProduct(*product)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotMasked, product.ID)
	}
	if product.Stock < req.Quantity {
		return nil, fmt.Errorf("%w for product %s (requested: %d, available: %d)", ErrInsufficientStock, product.Name, req.Quantity, product.Stock)
	}

	order := &models.AmazonOrder{
		AmazonOrderID:   req.AmazonOrderID,
		MaskedProductID: req.MaskedProductID,
		Quantity:        req.Quantity,
		OrderDate:       req.OrderDate,
		Status:          models.OrderStatusNew,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}
	metrics.OrdersCreated.Inc()
	log.Info().Str("order_id", order.ID).Str("amazon_order_id", order.AmazonOrderID).Msg("order recorded")

	publishEvent(s.publisher, EventOrderCreated, map[string]any{
		"order_id":          order.ID,
		"amazon_order_id":   order.AmazonOrderID,
		"masked_product_id": order.MaskedProductID,
		"real_product_id":   product.ID,
		"quantity":          order.Quantity,
		"status":            order.Status,
	})

	if s.notifier != nil {
		s.notifier.Notify(models.NotificationAmazonOrder, "New Amazon Order Received",
			fmt.Sprintf("Order #%s for %s (%s)", order.AmazonOrderID, listing.Name, units(order.Quantity)))
	}
	return order, nil
}

// UpdateOrderStatus updates the status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) (*models.AmazonOrder, error) {
	if !validOrderStatuses[status] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	order, err := s.orderRepo.UpdateStatus(id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return order, nil
}

// RecentOrders returns up to limit orders, newest first, with the masked and
// real product names resolved. Unknown products leave the names empty.
func (s *OrderService) RecentOrders(limit int) ([]models.OrderSummary, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}

	out := make([]models.OrderSummary, 0, len(orders))
	for _, o := range orders {
		summary := models.OrderSummary{AmazonOrder: o}
		if realID, ok := catalog.RealProductID(o.MaskedProductID); ok {
			if p, err := s.productRepo.GetByID(realID); err == nil {
				summary.RealProductName = p.Name
				if m, ok := catalog.MaskProduct(*p); ok {
					summary.MaskedProductName = m.Name
				}
			}
		}
		out = append(out, summary)
	}
	return out, nil
}

func units(n int) string {
	if n == 1 {
		return "1 unit"
	}
	return fmt.Sprintf("%d units", n)
}

// HandleEvent consumes inventory events from the broker. An order.created
// event moves a still-new order to notified; other keys are only logged.
func (s *OrderService) HandleEvent(routingKey string, body []byte) error {
	log.Info().Str("routing_key", routingKey).Int("bytes", len(body)).Msg("inventory event received")
	if routingKey != EventOrderCreated {
		return nil
	}

	var ev struct {
		OrderID string `json:"order_id"`
	}
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("decode %s event: %w", routingKey, err)
	}
	order, err := s.orderRepo.GetByID(ev.OrderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Warn().Str("order_id", ev.OrderID).Msg("event for unknown order, dropping")
			return nil
		}
		return err
	}
	if order.Status != models.OrderStatusNew {
		return nil
	}
	_, err = s.orderRepo.UpdateStatus(order.ID, models.OrderStatusNotified)
	return err
}
