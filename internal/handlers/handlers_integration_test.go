package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"paradise/internal/handlers"
	"paradise/internal/middleware"
	"paradise/internal/models"
	"paradise/internal/repositories"
	"paradise/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// setupApp wires a Fiber app the way main does, with zero simulated delays
// so tests run fast.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	menuRepo := repositories.NewInMemoryMenuRepository()
	if err := repositories.SeedDefaultCatalog(menuRepo); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
	orderRepo := repositories.NewInMemoryOrderRepository()

	menuService := services.NewMenuService(menuRepo)
	cartService := services.NewCartService()
	orderService := services.NewOrderService(orderRepo, nil) // nil for RabbitMQ client
	authService := services.NewAuthService("test_jwt_secret", 0)
	checkoutService := services.NewCheckoutService(cartService, orderService, authService, 0)

	menuHandler := handlers.NewMenuHandler(menuService)
	cartHandler := handlers.NewCartHandler(cartService, menuService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)

	app := fiber.New()
	app.Use(middleware.Session())

	apiV1 := app.Group("/api/v1")
	menuHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	checkoutHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)

	return app
}

// client keeps the session cookie across requests, like a browser would.
type client struct {
	t       *testing.T
	app     *fiber.App
	session string
}

func newClient(t *testing.T, app *fiber.App) *client {
	return &client{t: t, app: app}
}

func (c *client) do(method, path string, body interface{}) (*http.Response, []byte) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: c.session})
	}

	resp, err := c.app.Test(req, -1) // -1 for no timeout
	if err != nil {
		c.t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			c.session = cookie.Value
		}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.t.Fatalf("failed to read response body: %v", err)
	}
	resp.Body.Close()
	return resp, respBody
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestMenuEndpoints(t *testing.T) {
	app := setupApp(t)
	c := newClient(t, app)

	resp, body := c.do(http.MethodGet, "/api/v1/menu/categories", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var categories []models.Category
	assert.NoError(t, json.Unmarshal(body, &categories))
	assert.Len(t, categories, 3)

	resp, body = c.do(http.MethodGet, "/api/v1/menu/items?category=breakfast", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var items []models.MenuItem
	assert.NoError(t, json.Unmarshal(body, &items))
	assert.Len(t, items, 13)

	resp, _ = c.do(http.MethodGet, "/api/v1/menu/items?category=brunch", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = c.do(http.MethodGet, "/api/v1/menu/items/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var item models.MenuItem
	assert.NoError(t, json.Unmarshal(body, &item))
	assert.Equal(t, "Goat Liver", item.Name)
}

func TestCartEndpoints(t *testing.T) {
	app := setupApp(t)
	c := newClient(t, app)

	// Empty cart to start with.
	resp, body := c.do(http.MethodGet, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var cart models.Cart
	assert.NoError(t, json.Unmarshal(body, &cart))
	assert.Zero(t, cart.TotalItems)

	// Add the same item twice and a second one once.
	resp, _ = c.do(http.MethodPost, "/api/v1/cart/items", fiber.Map{"item_id": "1"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = c.do(http.MethodPost, "/api/v1/cart/items", fiber.Map{"item_id": "1"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, body = c.do(http.MethodPost, "/api/v1/cart/items", fiber.Map{"item_id": "9"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.NoError(t, json.Unmarshal(body, &cart))
	assert.Len(t, cart.Lines, 2)
	assert.Equal(t, 3, cart.TotalItems)
	assert.InDelta(t, 44.50, cart.TotalPrice, 1e-9)

	// Unknown menu items cannot be added.
	resp, _ = c.do(http.MethodPost, "/api/v1/cart/items", fiber.Map{"item_id": "999"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Quantity zero removes the line.
	resp, body = c.do(http.MethodPatch, "/api/v1/cart/items/9", fiber.Map{"quantity": 0})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, json.Unmarshal(body, &cart))
	assert.Len(t, cart.Lines, 1)

	resp, body = c.do(http.MethodDelete, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, json.Unmarshal(body, &cart))
	assert.Zero(t, cart.TotalItems)
	assert.Zero(t, cart.TotalPrice)
}

func TestCheckoutValidationOverHTTP(t *testing.T) {
	app := setupApp(t)
	c := newClient(t, app)

	// Checkout over an empty cart is rejected.
	resp, _ := c.do(http.MethodPost, "/api/v1/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	c.do(http.MethodPost, "/api/v1/cart/items", fiber.Map{"item_id": "1"})
	resp, _ = c.do(http.MethodPost, "/api/v1/checkout", nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = c.do(http.MethodPost, "/api/v1/checkout/guest", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Missing fields come back as a field-keyed error map.
	resp, body := c.do(http.MethodPost, "/api/v1/checkout/details", fiber.Map{
		"customer": fiber.Map{
			"first_name": "",
			"last_name":  "Doe",
			"email":      "a@b.com",
			"phone":      "555",
		},
		"order_type": "pickup",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var state services.CheckoutState
	assert.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, services.StepDetails, state.Step)
	assert.Len(t, state.Errors, 1)
	assert.Contains(t, state.Errors, "firstName")
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	app := setupApp(t)
	c := newClient(t, app)

	c.do(http.MethodPost, "/api/v1/cart/items", fiber.Map{"item_id": "1"})
	c.do(http.MethodPost, "/api/v1/cart/items", fiber.Map{"item_id": "9"})

	resp, _ := c.do(http.MethodPost, "/api/v1/checkout", nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = c.do(http.MethodPost, "/api/v1/checkout/guest", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = c.do(http.MethodPost, "/api/v1/checkout/details", fiber.Map{
		"customer": fiber.Map{
			"first_name": "John",
			"last_name":  "Doe",
			"email":      "john.doe@gmail.com",
			"phone":      "555-0100",
		},
		"order_type": "pickup",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = c.do(http.MethodPost, "/api/v1/checkout/payment-method", fiber.Map{"payment_method": "cash"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := c.do(http.MethodPost, "/api/v1/checkout/place", fiber.Map{})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var order models.Order
	assert.NoError(t, json.Unmarshal(body, &order))
	assert.Regexp(t, `^AP-[0-9A-Z]+$`, order.ID)
	assert.Equal(t, models.OrderTypePickup, order.OrderType)
	assert.Equal(t, models.PaymentMethodCash, order.PaymentMethod)
	assert.Zero(t, order.DeliveryFee)
	assert.Equal(t, "15-20 minutes", order.EstimatedTime)

	// The cart is empty after placing the order.
	resp, body = c.do(http.MethodGet, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var cart models.Cart
	assert.NoError(t, json.Unmarshal(body, &cart))
	assert.Zero(t, cart.TotalItems)

	// The confirmation screen reads the current order.
	resp, body = c.do(http.MethodGet, "/api/v1/orders/current", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var current models.Order
	assert.NoError(t, json.Unmarshal(body, &current))
	assert.Equal(t, order.ID, current.ID)

	// Dismissing the confirmation clears the pointer but not the history.
	resp, _ = c.do(http.MethodDelete, "/api/v1/orders/current", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = c.do(http.MethodGet, "/api/v1/orders/current", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = c.do(http.MethodGet, "/api/v1/orders/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var history []models.Order
	assert.NoError(t, json.Unmarshal(body, &history))
	assert.Len(t, history, 1)
}

func TestCheckoutSignInOverHTTP(t *testing.T) {
	app := setupApp(t)
	c := newClient(t, app)

	c.do(http.MethodPost, "/api/v1/cart/items", fiber.Map{"item_id": "1"})
	c.do(http.MethodPost, "/api/v1/checkout", nil)

	resp, body := c.do(http.MethodPost, "/api/v1/checkout/signin", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		State services.CheckoutState `json:"state"`
		Token string                 `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(body, &result))
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, services.StepDetails, result.State.Step)
	assert.Equal(t, "John", result.State.Customer.FirstName)
	assert.Equal(t, "john.doe@gmail.com", result.State.Customer.Email)
}

func TestSessionsAreIsolated(t *testing.T) {
	app := setupApp(t)
	alice := newClient(t, app)
	bob := newClient(t, app)

	alice.do(http.MethodPost, "/api/v1/cart/items", fiber.Map{"item_id": "1"})

	_, body := bob.do(http.MethodGet, "/api/v1/cart", nil)
	var cart models.Cart
	assert.NoError(t, json.Unmarshal(body, &cart))
	assert.Zero(t, cart.TotalItems)
}
