package handlers

import (
	"gudang/internal/middleware"
	"gudang/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Services are the collaborators the API is served from.
type Services struct {
	Auth          *services.AuthService
	Products      *services.ProductService
	Orders        *services.OrderService
	Notifications *services.NotificationService
	Dashboard     *services.DashboardService
}

// RegisterAPI mounts the login route on router and every other route behind
// the JWT guard.
func RegisterAPI(router fiber.Router, s Services) {
	authHandler := NewAuthHandler(s.Auth)
	authHandler.RegisterPublicRoutes(router)

	protected := router.Group("", middleware.AuthRequired(s.Auth))
	authHandler.RegisterRoutes(protected)
	NewProductHandler(s.Products).RegisterRoutes(protected)
	NewOrderHandler(s.Orders).RegisterRoutes(protected)
	NewNotificationHandler(s.Notifications).RegisterRoutes(protected)
	NewDashboardHandler(s.Dashboard).RegisterRoutes(protected)
}
