// Package server assembles the Fiber application: middleware, CORS, health
// check and the API routes.
package server

import (
	"context"
	"log"
	"time"

	"productsvc/internal/config"
	"productsvc/internal/database"
	"productsvc/internal/handlers"
	"productsvc/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RouteRegistrar is implemented by handlers that mount their routes under /api.
type RouteRegistrar interface {
	RegisterRoutes(router fiber.Router)
}

// New builds the Fiber app. store backs the health check.
func New(cfg config.Config, store database.Pinger, registrars ...RouteRegistrar) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "products",
		ErrorHandler: handlers.ErrorHandler,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(middleware.Identity(cfg.JWTSecret))

	app.Get("/health", healthHandler(store))

	api := app.Group("/api")
	for _, r := range registrars {
		r.RegisterRoutes(api)
	}
	return app
}

func healthHandler(store database.Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			log.Printf("Health check failed: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
				"time":   time.Now().Format(time.RFC3339),
			})
		}
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}
