package schools

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/config"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

// SetupSchoolsRoutes registers the tenant endpoints.
func SetupSchoolsRoutes(app *fiber.App) {
	api := app.Group("/api/schools")
	api.Use(auth.AuthMiddleware)

	api.Get("/me", func(c *fiber.Ctx) error {
		return GetMySchoolAPI(c, config.GetDB())
	})
	api.Put("/me", auth.RoleMiddleware(models.RoleAdmin, models.RoleDirector), func(c *fiber.Ctx) error {
		return UpdateMySchoolAPI(c, config.GetDB())
	})
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error {
		return CreateSchoolAPI(c, config.GetDB())
	})
}
