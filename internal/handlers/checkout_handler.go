package handlers

import (
	"errors"
	"fmt"
	"log"

	"paradise/internal/middleware"
	"paradise/internal/models"
	"paradise/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for the checkout flow.
type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	validate        *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout")
	checkoutRoutes.Get("/", h.HandleGetState)
	checkoutRoutes.Post("/", h.HandleStart)
	checkoutRoutes.Post("/guest", h.HandleContinueAsGuest)
	checkoutRoutes.Post("/signin", h.HandleSignIn)
	checkoutRoutes.Post("/details", h.HandleSubmitDetails)
	checkoutRoutes.Post("/order-type", h.HandleSetOrderType)
	checkoutRoutes.Post("/payment-method", h.HandleSetPaymentMethod)
	checkoutRoutes.Post("/back", h.HandleBack)
	checkoutRoutes.Post("/place", h.HandlePlaceOrder)
}

// flowError translates a checkout service error into an HTTP response.
func flowError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNoActiveCheckout):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No active checkout",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cart is empty",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrOrderInFlight):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Order is already being processed",
			"error":   err.Error(),
		})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Checkout step not allowed",
			"error":   err.Error(),
		})
	}
}

// HandleGetState returns the session's current checkout state.
func (h *CheckoutHandler) HandleGetState(c *fiber.Ctx) error {
	state, err := h.checkoutService.State(middleware.SessionID(c))
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(state)
}

// HandleStart begins a fresh checkout flow over the session's cart.
func (h *CheckoutHandler) HandleStart(c *fiber.Ctx) error {
	state, err := h.checkoutService.Start(middleware.SessionID(c))
	if err != nil {
		log.Printf("Error starting checkout: %v", err)
		return flowError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

// HandleContinueAsGuest advances past the auth step without signing in.
func (h *CheckoutHandler) HandleContinueAsGuest(c *fiber.Ctx) error {
	state, err := h.checkoutService.ContinueAsGuest(middleware.SessionID(c))
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(state)
}

// HandleSignIn runs the simulated sign-on and advances to the details step.
// The response carries the pre-filled state and the session token.
func (h *CheckoutHandler) HandleSignIn(c *fiber.Ctx) error {
	state, token, err := h.checkoutService.SignIn(middleware.SessionID(c))
	if err != nil {
		log.Printf("Error during checkout sign-in: %v", err)
		return flowError(c, err)
	}
	return c.JSON(fiber.Map{
		"state": state,
		"token": token,
	})
}

// DetailsRequest is the request body for the details step. OrderType is
// optional; when present it updates the delivery/pickup selection before
// validation runs.
type DetailsRequest struct {
	Customer        models.CustomerInfo    `json:"customer"`
	OrderType       models.OrderType       `json:"order_type" validate:"omitempty,oneof=delivery pickup"`
	DeliveryAddress models.DeliveryAddress `json:"delivery_address"`
}

// HandleSubmitDetails validates the contact block (and address for
// delivery) and advances to the payment step. Validation failures come back
// as a 400 with a field-keyed error map on the state.
func (h *CheckoutHandler) HandleSubmitDetails(c *fiber.Ctx) error {
	var req DetailsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing details request body: %v", err)
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

	sessionID := middleware.SessionID(c)
	if req.OrderType != "" {
		if _, err := h.checkoutService.SetOrderType(sessionID, req.OrderType); err != nil {
			return flowError(c, err)
		}
	}

	state, err := h.checkoutService.SubmitDetails(sessionID, req.Customer, req.DeliveryAddress)
	if err != nil {
		return flowError(c, err)
	}
	if len(state.Errors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(state)
	}
	return c.JSON(state)
}

// OrderTypeRequest is the request body for the delivery/pickup selection.
type OrderTypeRequest struct {
	OrderType models.OrderType `json:"order_type" validate:"required,oneof=delivery pickup"`
}

// HandleSetOrderType switches the delivery/pickup selection.
func (h *CheckoutHandler) HandleSetOrderType(c *fiber.Ctx) error {
	var req OrderTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "order_type must be delivery or pickup",
		})
	}

	state, err := h.checkoutService.SetOrderType(middleware.SessionID(c), req.OrderType)
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(state)
}

// PaymentMethodRequest is the request body for the card/cash selection.
type PaymentMethodRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method" validate:"required,oneof=card cash"`
}

// HandleSetPaymentMethod switches the card/cash selection.
func (h *CheckoutHandler) HandleSetPaymentMethod(c *fiber.Ctx) error {
	var req PaymentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "payment_method must be card or cash",
		})
	}

	state, err := h.checkoutService.SetPaymentMethod(middleware.SessionID(c), req.PaymentMethod)
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(state)
}

// HandleBack moves the flow to the immediately preceding step.
func (h *CheckoutHandler) HandleBack(c *fiber.Ctx) error {
	state, err := h.checkoutService.Back(middleware.SessionID(c))
	if err != nil {
		return flowError(c, err)
	}
	return c.JSON(state)
}

// PlaceOrderRequest is the request body for placing the order. Card is
// ignored when paying cash.
type PlaceOrderRequest struct {
	Card models.CardDetails `json:"card"`
}

// HandlePlaceOrder runs the terminal checkout action: payment validation,
// the simulated processing wait, order creation and cart clearing.
func (h *CheckoutHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing place order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, state, err := h.checkoutService.PlaceOrder(middleware.SessionID(c), req.Card)
	if err != nil {
		log.Printf("Error placing order: %v", err)
		return flowError(c, err)
	}
	if order == nil {
		return c.Status(fiber.StatusBadRequest).JSON(state)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}
