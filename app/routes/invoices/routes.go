package invoices

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/config"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

// SetupInvoicesRoutes registers the invoice endpoints.
func SetupInvoicesRoutes(app *fiber.App) {
	api := app.Group("/api/invoices")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin, models.RoleDirector, models.RoleAccountant))

	api.Get("/", func(c *fiber.Ctx) error {
		return GetInvoicesAPI(c, config.GetDB())
	})
	api.Get("/overdue", func(c *fiber.Ctx) error {
		return GetOverdueInvoicesAPI(c, config.GetDB())
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetInvoiceByIDAPI(c, config.GetDB())
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return CreateInvoiceAPI(c, config.GetDB())
	})
	api.Post("/:id/send", func(c *fiber.Ctx) error {
		return SendInvoiceAPI(c, config.GetDB())
	})
	api.Post("/:id/pay", func(c *fiber.Ctx) error {
		return MarkInvoicePaidAPI(c, config.GetDB())
	})
	api.Post("/:id/cancel", func(c *fiber.Ctx) error {
		return CancelInvoiceAPI(c, config.GetDB())
	})
}
