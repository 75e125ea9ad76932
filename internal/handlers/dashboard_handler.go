package handlers

import (
	"gudang/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the summary figures.
type DashboardHandler struct {
	service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard/stats", h.HandleStats)
}

func (h *DashboardHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return respondError(c, err, "Could not compute dashboard stats")
	}
	return c.JSON(stats)
}
