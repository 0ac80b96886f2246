package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"productsvc/internal/config"
	"productsvc/internal/database"
	"productsvc/internal/handlers"
	"productsvc/internal/models"
	"productsvc/internal/repositories"
	"productsvc/internal/server"
	"productsvc/internal/services"
	"productsvc/internal/validators"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(config.New())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Repository ---
	productRepo, store, cleanup, err := openRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer cleanup()

	if cfg.SeedProducts {
		seedProducts(productRepo)
	}

	// --- Initialize Services and Handlers ---
	productValidator := validators.NewProductValidator()
	productService := services.NewProductService(productRepo, productValidator)
	productHandler := handlers.NewProductHandler(productService, productValidator)

	app := server.New(cfg, store, productHandler)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s (storage: %s)", cfg.AppPort, cfg.DBDriver)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure.
	select {
	case sig := <-quit:
		log.Printf("Received %s, shutting down server...", sig)
	case err := <-serverErr:
		log.Printf("Server failed: %v", err)
	}

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openRepository builds the product repository for the configured driver and
// returns the store used by the health check plus a cleanup func.
func openRepository(cfg config.Config) (repositories.ProductRepository, database.Pinger, func(), error) {
	if cfg.DBDriver == config.DriverMemory {
		repo := repositories.NewMockProductRepository()
		return repo, repo, func() {}, nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}

	if err := database.Migrate(context.Background(), db, cfg); err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return repositories.NewGORMProductRepository(db), database.GormPinger{DB: db}, cleanup, nil
}

// seedProducts populates an empty repository with some initial data.
func seedProducts(repo repositories.ProductRepository) {
	ctx := context.Background()
	existing, err := repo.GetAll(ctx)
	if err != nil {
		log.Printf("Error checking products before seeding: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	price := func(v float64) *float64 { return &v }
	qty := func(v int) *int { return &v }
	products := []models.Product{
		{ProductName: "Laptop", UnitPrice: price(1200), QuantityInStock: qty(10), Category: models.CategoryElectronics},
		{ProductName: "Microwave Oven", UnitPrice: price(149.5), QuantityInStock: qty(7), Category: models.CategoryHomeAppliances},
		{ProductName: "Office Chair", UnitPrice: price(319), QuantityInStock: qty(8), Category: models.CategoryFurniture},
		{ProductName: "Leather Wallet", UnitPrice: price(45), QuantityInStock: qty(30), Category: models.CategoryAccessories},
		{ProductName: "Fountain Pen", UnitPrice: price(25), QuantityInStock: qty(50), Category: models.CategoryStationery},
	}

	for i := range products {
		added, err := repo.Add(ctx, &products[i])
		if err != nil {
			log.Printf("Error seeding product %s: %v", products[i].ProductName, err)
			continue
		}
		log.Printf("Seeded product: %s (ID: %s)", added.ProductName, added.ProductID)
	}
}
