package handler

import (
	"go-erp-api/internal/config"
	"go-erp-api/internal/store"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	store store.Store
	cfg   config.Config
}

func NewHealthHandler(st store.Store, cfg config.Config) *HealthHandler {
	return &HealthHandler{store: st, cfg: cfg}
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"name": "Mini ERP API", "status": "ok"})
}

// TestDatabase reports storage reachability in the payload shape the admin
// frontend expects.
func (h *HealthHandler) TestDatabase(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store != nil {
		if err := h.store.Ping(c.Context()); err != nil {
			response["database"] = "⚠️  Available but Error: " + truncate(err.Error(), 80)
		} else {
			response["database"] = "✅ Connected & Working"
			response["connection_status"] = "Connected"
			if collections, err := h.store.Collections(c.Context()); err == nil {
				if len(collections) > 20 {
					collections = collections[:20]
				}
				response["collections"] = collections
			}
		}
	}

	if h.cfg.Database.URL != "" {
		response["database_url"] = "✅ Set"
	}
	if h.cfg.Database.Name != "" {
		response["database_name"] = "✅ Set"
	}
	return c.JSON(response)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
