package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/config"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

// SetupDashboardRoutes registers the dashboard endpoint.
func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin, models.RoleDirector, models.RoleAccountant))

	api.Get("/stats", func(c *fiber.Ctx) error {
		return GetDashboardStatsAPI(c, config.GetDB())
	})
}
