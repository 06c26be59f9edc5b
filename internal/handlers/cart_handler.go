package handlers

import (
	"fmt"
	"log"

	"paradise/internal/middleware"
	"paradise/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the session cart.
type CartHandler struct {
	cartService *services.CartService
	menuService *services.MenuService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService, menuService *services.MenuService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		menuService: menuService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:id", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
	cartRoutes.Put("/open", h.HandleSetOpen)
}

// HandleGetCart returns the session's cart with its derived totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)
	return c.JSON(h.cartService.Snapshot(sessionID))
}

// AddItemRequest is the request body for adding a menu item to the cart.
type AddItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// HandleAddItem adds one unit of a menu item to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	item, err := h.menuService.GetItemByID(req.ItemID)
	if err != nil {
		log.Printf("Error adding unknown menu item %s: %v", req.ItemID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Menu item not found",
			"error":   err.Error(),
		})
	}

	sessionID := middleware.SessionID(c)
	h.cartService.AddItem(sessionID, *item)
	return c.Status(fiber.StatusCreated).JSON(h.cartService.Snapshot(sessionID))
}

// UpdateQuantityRequest is the request body for setting a line quantity.
// A quantity of zero or below removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateQuantity sets the quantity of a cart line.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update quantity request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	sessionID := middleware.SessionID(c)
	h.cartService.UpdateQuantity(sessionID, c.Params("id"), req.Quantity)
	return c.JSON(h.cartService.Snapshot(sessionID))
}

// HandleRemoveItem deletes a cart line. Removing an absent line is a no-op.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)
	h.cartService.RemoveItem(sessionID, c.Params("id"))
	return c.JSON(h.cartService.Snapshot(sessionID))
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)
	h.cartService.Clear(sessionID)
	return c.JSON(h.cartService.Snapshot(sessionID))
}

// SetOpenRequest is the request body for the cart visibility toggle.
type SetOpenRequest struct {
	Open bool `json:"open"`
}

// HandleSetOpen toggles the cart's presentation visibility flag.
func (h *CartHandler) HandleSetOpen(c *fiber.Ctx) error {
	var req SetOpenRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing set open request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	sessionID := middleware.SessionID(c)
	h.cartService.SetOpen(sessionID, req.Open)
	return c.JSON(h.cartService.Snapshot(sessionID))
}
