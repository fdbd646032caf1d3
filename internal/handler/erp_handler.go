package handler

import (
	"errors"
	"strconv"

	"go-erp-api/internal/schema"
	"go-erp-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ERPHandler struct {
	service service.ERPService
}

func NewERPHandler(s service.ERPService) *ERPHandler {
	return &ERPHandler{service: s}
}

func (h *ERPHandler) CreateCustomer(c *fiber.Ctx) error { return h.create(c, "customer") }
func (h *ERPHandler) CreateProduct(c *fiber.Ctx) error  { return h.create(c, "product") }
func (h *ERPHandler) CreateInvoice(c *fiber.Ctx) error  { return h.create(c, "invoice") }

func (h *ERPHandler) ListCustomers(c *fiber.Ctx) error { return h.list(c, "customer", 50) }
func (h *ERPHandler) ListProducts(c *fiber.Ctx) error  { return h.list(c, "product", 100) }
func (h *ERPHandler) ListInvoices(c *fiber.Ctx) error  { return h.list(c, "invoice", 50) }

func (h *ERPHandler) create(c *fiber.Ctx, entity string) error {
	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	doc, err := h.service.Create(c.Context(), entity, payload)
	if err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			return c.Status(400).JSON(fiber.Map{"error": verr.Error(), "fields": verr.Fields})
		}
		if errors.Is(err, service.ErrUnknownEntity) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create " + entity})
	}

	return c.Status(201).JSON(doc)
}

func (h *ERPHandler) list(c *fiber.Ctx, entity string, defaultLimit int) error {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}

	docs, err := h.service.List(c.Context(), entity, map[string]interface{}{}, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch " + entity + " list"})
	}
	return c.JSON(docs)
}
