package receipts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/config"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

// SetupReceiptsRoutes registers the receipt endpoints.
func SetupReceiptsRoutes(app *fiber.App) {
	api := app.Group("/api/receipts")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin, models.RoleDirector, models.RoleAccountant))

	api.Get("/", func(c *fiber.Ctx) error {
		return GetReceiptsAPI(c, config.GetDB())
	})
	api.Get("/eligible", func(c *fiber.Ctx) error {
		return GetEligiblePaymentsAPI(c, config.GetDB())
	})
	api.Post("/generate/:paymentId", func(c *fiber.Ctx) error {
		return GenerateReceiptAPI(c, config.GetDB())
	})
}
