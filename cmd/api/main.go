package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-stock-tracker/internal/handler"
	"go-stock-tracker/internal/model"
	"go-stock-tracker/internal/repository"
	"go-stock-tracker/internal/service"
	"go-stock-tracker/internal/ws"
	"go-stock-tracker/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Product{}, &model.Sale{})

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	statsRepo := repository.NewStatsRepo(db)

	catalogService := service.NewCatalogService(productRepo, wsHub)
	invService := service.NewInventoryService(productRepo, saleRepo, wsHub)
	statsService := service.NewStatsService(productRepo, saleRepo, statsRepo, wsHub)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	invHandler := handler.NewInventoryHandler(invService)
	statsHandler := handler.NewStatsHandler(statsService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Stock Tracker API v1.0",
		ErrorHandler: handler.ErrorHandler,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// Product Catalog Routes
	// low-stock is registered before :id so it wins the match
	api.Get("/products/low-stock", statsHandler.GetLowStock)
	api.Get("/products", catalogHandler.GetProducts)
	api.Get("/products/:id", catalogHandler.GetProduct)
	api.Post("/products", catalogHandler.CreateProduct)
	api.Put("/products/:id", catalogHandler.UpdateProduct)
	api.Delete("/products/:id", catalogHandler.DeleteProduct)

	// Inventory Mutation Routes
	api.Post("/sell", invHandler.Sell)
	api.Post("/restock", invHandler.Restock)

	// Aggregation Routes
	api.Get("/sales/summary", statsHandler.GetSalesSummary)
	api.Get("/statistics", statsHandler.GetStatistics)

	// Administrative reset (irreversible)
	api.Post("/admin/clear", statsHandler.ClearData)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
