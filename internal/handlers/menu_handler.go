package handlers

import (
	"log"
	"strings"

	"paradise/internal/services"

	"github.com/gofiber/fiber/v2"
)

// MenuHandler handles HTTP requests for the menu catalog.
type MenuHandler struct {
	service *services.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(service *services.MenuService) *MenuHandler {
	return &MenuHandler{
		service: service,
	}
}

// RegisterRoutes registers the menu routes with the Fiber app.
func (h *MenuHandler) RegisterRoutes(router fiber.Router) {
	menuRoutes := router.Group("/menu")
	menuRoutes.Get("/categories", h.HandleGetCategories)
	menuRoutes.Get("/items", h.HandleGetItems)
	menuRoutes.Get("/items/:id", h.HandleGetItemByID)
}

// HandleGetCategories retrieves all menu categories.
func (h *MenuHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories()
	if err != nil {
		log.Printf("Error getting categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(categories)
}

// HandleGetItems retrieves menu items, optionally filtered by the category
// query parameter.
func (h *MenuHandler) HandleGetItems(c *fiber.Ctx) error {
	category := c.Query("category")

	var err error
	var items interface{}
	if category == "" {
		items, err = h.service.GetAllItems()
	} else {
		items, err = h.service.GetItemsByCategory(category)
	}
	if err != nil {
		log.Printf("Error getting menu items: %v", err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Unknown category",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve menu items",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleGetItemByID retrieves a single menu item by its ID.
func (h *MenuHandler) HandleGetItemByID(c *fiber.Ctx) error {
	itemID := c.Params("id")
	item, err := h.service.GetItemByID(itemID)
	if err != nil {
		log.Printf("Error getting menu item by ID %s: %v", itemID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Menu item not found",
			"error":   err.Error(),
		})
	}
	return c.JSON(item)
}
