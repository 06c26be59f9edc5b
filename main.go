package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"

	"paradise/internal/handlers"
	"paradise/internal/middleware"
	"paradise/internal/repositories"
	"paradise/internal/services"
	"paradise/pkg/rabbitmq"

	"github.com/spf13/viper"
)

// NewApp wires the whole service: config, catalog, services, handlers and
// the Fiber app. The returned RabbitMQ client is nil when no broker is
// configured; the service then runs fully self-contained.
func NewApp() (*fiber.App, *rabbitmq.Client, error) {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("JWT_SECRET", "paradise-dev-secret")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables order event publishing
	viper.SetDefault("SIGNIN_DELAY_MS", 1500)
	viper.SetDefault("PROCESSING_DELAY_MS", 2000)
	viper.AutomaticEnv()

	// --- Optional RabbitMQ client ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			return nil, nil, err
		}
	} else {
		log.Println("RABBITMQ_URL not set; order events will not be published")
	}

	// --- Catalog ---
	menuRepo := repositories.NewInMemoryMenuRepository()
	if err := repositories.SeedDefaultCatalog(menuRepo); err != nil {
		return nil, nil, err
	}
	log.Printf("Seeded catalog: %d categories, %d menu items",
		len(repositories.DefaultCategories), len(repositories.DefaultMenuItems))

	orderRepo := repositories.NewInMemoryOrderRepository()

	// --- Services ---
	menuService := services.NewMenuService(menuRepo)
	cartService := services.NewCartService()
	orderService := services.NewOrderService(orderRepo, mqClient)
	authService := services.NewAuthService(
		viper.GetString("JWT_SECRET"),
		time.Duration(viper.GetInt("SIGNIN_DELAY_MS"))*time.Millisecond,
	)
	checkoutService := services.NewCheckoutService(
		cartService, orderService, authService,
		time.Duration(viper.GetInt("PROCESSING_DELAY_MS"))*time.Millisecond,
	)

	// --- Handlers ---
	menuHandler := handlers.NewMenuHandler(menuService)
	cartHandler := handlers.NewCartHandler(cartService, menuService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// --- Fiber app ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(middleware.Session())

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	menuHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	checkoutHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, mqClient, nil
}

func main() {
	app, mqClient, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	if mqClient != nil {
		defer mqClient.Close()

		// Listen for our own order events. Stands in for the kitchen-side
		// consumer; it only logs for now.
		go func() {
			log.Println("Starting RabbitMQ consumer for order events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received order event (tag: %d, type: %s): %s", msg.DeliveryTag, msg.Type, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
