package handlers

import (
	"gudang/internal/services"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler serves the operator inbox.
type NotificationHandler struct {
	service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/notifications")
	routes.Get("/", h.HandleList)
	routes.Patch("/:id/read", h.HandleMarkRead)
	routes.Post("/read-all", h.HandleMarkAllRead)
}

// HandleList returns all notifications with the unread count.
func (h *NotificationHandler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.List()
	if err != nil {
		return respondError(c, err, "Could not retrieve notifications")
	}
	unread, err := h.service.UnreadCount()
	if err != nil {
		return respondError(c, err, "Could not count unread notifications")
	}
	return c.JSON(fiber.Map{
		"notifications": list,
		"unread":        unread,
	})
}

func (h *NotificationHandler) HandleMarkRead(c *fiber.Ctx) error {
	if err := h.service.MarkRead(c.Params("id")); err != nil {
		return respondError(c, err, "Could not mark notification as read")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NotificationHandler) HandleMarkAllRead(c *fiber.Ctx) error {
	n, err := h.service.MarkAllRead()
	if err != nil {
		return respondError(c, err, "Could not mark notifications as read")
	}
	return c.JSON(fiber.Map{"updated": n})
}
