package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-erp-api/internal/config"
	"go-erp-api/internal/handler"
	"go-erp-api/internal/schema"
	"go-erp-api/internal/service"
	"go-erp-api/internal/store"
	"go-erp-api/internal/store/memory"
	"go-erp-api/internal/store/postgres"
	"go-erp-api/internal/ws"
	"go-erp-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Config (reads .env when present)
	cfg := config.Load()

	// 2. Setup Storage
	var docStore store.Store
	if cfg.Database.URL != "" {
		db := database.ConnectDB(cfg.Database)
		if err := postgres.Migrate(db); err != nil {
			log.Fatal("Failed to migrate documents table: ", err)
		}
		docStore = postgres.New(db)
	} else {
		log.Println("Warning: DATABASE_URL not set, using in-memory store")
		docStore = memory.New()
	}

	// 3. Entity Schema Registry
	registry := schema.NewRegistry()

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	erpService := service.NewERPService(registry, docStore, wsHub)

	erpHandler := handler.NewERPHandler(erpService)
	schemaHandler := handler.NewSchemaHandler(registry)
	healthHandler := handler.NewHealthHandler(docStore, cfg)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Mini ERP API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	handler.RegisterRoutes(app, erpHandler, schemaHandler, healthHandler)

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

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(cfg.Address()); err != nil {
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
