package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/config"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

// SetupClassesRoutes registers the class endpoints.
func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin, models.RoleDirector))

	api.Get("/", func(c *fiber.Ctx) error {
		return GetClassesAPI(c, config.GetDB())
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return CreateClassAPI(c, config.GetDB())
	})
}
