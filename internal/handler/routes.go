package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the HTTP surface: CRUD resources, schema
// introspection and health endpoints.
func RegisterRoutes(app *fiber.App, erp *ERPHandler, sch *SchemaHandler, health *HealthHandler) {
	app.Get("/", health.Root)
	app.Get("/test", health.TestDatabase)
	app.Get("/schema", sch.GetSchema)

	app.Post("/customers", erp.CreateCustomer)
	app.Get("/customers", erp.ListCustomers)

	app.Post("/products", erp.CreateProduct)
	app.Get("/products", erp.ListProducts)

	app.Post("/invoices", erp.CreateInvoice)
	app.Get("/invoices", erp.ListInvoices)
}
