package handlers

import (
	"fmt"
	"time"

	"gudang/internal/models"
	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const defaultRecentOrders = 5

// OrderHandler handles HTTP requests for marketplace orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/recent", h.HandleRecentOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleGetOrders retrieves all orders, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return respondError(c, err, "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleRecentOrders retrieves the latest orders with product names resolved.
func (h *OrderHandler) HandleRecentOrders(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultRecentOrders)
	if limit <= 0 {
		return badRequest(c, "limit must be a positive integer", nil)
	}
	orders, err := h.service.RecentOrders(limit)
	if err != nil {
		return respondError(c, err, "Could not retrieve recent orders")
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Could not retrieve order %s", orderID))
	}
	return c.JSON(order)
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	AmazonOrderID   string    `json:"amazon_order_id" validate:"required,max=64"`
	MaskedProductID string    `json:"masked_product_id" validate:"required"`
	Quantity        int       `json:"quantity" validate:"required,gt=0"`
	OrderDate       time.Time `json:"order_date"`
}

// HandleCreateOrder records a new order against a masked listing.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	createdOrder, err := h.service.CreateOrder(models.AmazonOrder{
		AmazonOrderID:   req.AmazonOrderID,
		MaskedProductID: req.MaskedProductID,
		Quantity:        req.Quantity,
		OrderDate:       req.OrderDate,
	})
	if err != nil {
		return respondError(c, err, "Could not create order")
	}
	return c.Status(fiber.StatusCreated).JSON(createdOrder)
}

// HandleUpdateOrderStatus updates the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return badRequest(c, "Invalid request body for status update", err)
	}
	if err := h.validate.Struct(updateData); err != nil {
		return validationFailed(c, err)
	}

	order, err := h.service.UpdateOrderStatus(orderID, updateData.Status)
	if err != nil {
		return respondError(c, err, "Could not update order status")
	}
	return c.JSON(order)
}
