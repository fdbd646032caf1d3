package handler

import (
	"go-erp-api/internal/schema"

	"github.com/gofiber/fiber/v2"
)

// SchemaHandler exposes the entity registry to external low-code CRUD
// tooling. The response is derived from the registry alone.
type SchemaHandler struct {
	registry *schema.Registry
}

func NewSchemaHandler(r *schema.Registry) *SchemaHandler {
	return &SchemaHandler{registry: r}
}

func (h *SchemaHandler) GetSchema(c *fiber.Ctx) error {
	return c.JSON(h.registry.DescribeAll())
}
