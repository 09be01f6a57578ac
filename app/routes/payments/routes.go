package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/config"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

// SetupPaymentsRoutes registers the payment endpoints.
func SetupPaymentsRoutes(app *fiber.App) {
	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin, models.RoleDirector, models.RoleAccountant))

	api.Get("/", func(c *fiber.Ctx) error {
		return GetPaymentsAPI(c, config.GetDB())
	})
	api.Get("/stats", func(c *fiber.Ctx) error {
		return GetPaymentStatsAPI(c, config.GetDB())
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetPaymentByIDAPI(c, config.GetDB())
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return CreatePaymentAPI(c, config.GetDB())
	})
	api.Post("/:id/pay", func(c *fiber.Ctx) error {
		return MarkPaymentPaidAPI(c, config.GetDB())
	})
	api.Post("/:id/fail", func(c *fiber.Ctx) error {
		return MarkPaymentFailedAPI(c, config.GetDB())
	})
	api.Post("/:id/retry", func(c *fiber.Ctx) error {
		return RetryPaymentAPI(c, config.GetDB())
	})
}
