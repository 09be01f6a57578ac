package subscriptions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/config"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

// SetupSubscriptionsRoutes registers the subscription endpoints.
func SetupSubscriptionsRoutes(app *fiber.App) {
	api := app.Group("/api/subscriptions")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin, models.RoleDirector))

	api.Get("/", func(c *fiber.Ctx) error {
		return GetSubscriptionsAPI(c, config.GetDB())
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return CreateSubscriptionAPI(c, config.GetDB())
	})
	api.Post("/:id/activate", func(c *fiber.Ctx) error {
		return ActivateSubscriptionAPI(c, config.GetDB())
	})
	api.Post("/:id/expire", func(c *fiber.Ctx) error {
		return ExpireSubscriptionAPI(c, config.GetDB())
	})
}
