package handlers

import (
	"log"

	"paradise/internal/middleware"
	"paradise/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
// The /current routes must be registered before /:id so Fiber does not
// treat "current" as an order id.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/current", h.HandleGetCurrentOrder)
	orderRoutes.Delete("/current", h.HandleClearCurrentOrder)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
}

// HandleGetOrders retrieves the order history, newest first. The history is
// a process-wide accumulation; nothing else in the service reads it.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.History()
	if err != nil {
		log.Printf("Error getting order history: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetCurrentOrder returns the session's current order, i.e. the one
// shown on the confirmation screen.
func (h *OrderHandler) HandleGetCurrentOrder(c *fiber.Ctx) error {
	order := h.service.CurrentOrder(middleware.SessionID(c))
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No current order",
		})
	}
	return c.JSON(order)
}

// HandleClearCurrentOrder dismisses the confirmation: the current order
// pointer is dropped, the history stays.
func (h *OrderHandler) HandleClearCurrentOrder(c *fiber.Ctx) error {
	h.service.ClearCurrentOrder(middleware.SessionID(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Order not found",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}
