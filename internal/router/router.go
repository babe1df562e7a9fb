package router

import (
	"github.com/gigwallet/insights/internal/config"
	"github.com/gigwallet/insights/internal/handlers"
	"github.com/gigwallet/insights/internal/logging"
	"github.com/gigwallet/insights/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Setup configures all routes and middlewares
func Setup(app *fiber.App, logger *logging.Logger, cfg config.Config) *handlers.Handler {
	h := handlers.New(logger, cfg.Engine)

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
	}))
	app.Use(logging.FiberMiddleware(logger))

	// Health check
	app.Get("/health", h.Health)

	// API v1 routes
	v1 := app.Group("/v1")

	// Anomaly analysis
	v1.Post("/analyze", h.Analyze)

	// Forecast routes
	v1.Post("/forecast/earnings", h.ForecastEarnings)
	v1.Post("/forecast/expenses", h.ForecastExpenses)
	v1.Post("/forecast/velocity", h.ForecastVelocity)

	// 404 handler
	app.Use(h.NotFound)

	return h
}

// New creates a new Fiber app with configuration
func New(logger *logging.Logger, cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "GigWallet Insights",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	Setup(app, logger, cfg)

	return app
}
