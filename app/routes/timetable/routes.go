package timetable

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/config"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

// SetupTimetableRoutes registers the scheduling endpoints.
func SetupTimetableRoutes(app *fiber.App) {
	api := app.Group("/api/timetable")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin, models.RoleDirector, models.RoleTeacher))

	api.Get("/", func(c *fiber.Ctx) error {
		return GetTimetableAPI(c, config.GetDB())
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return CreateTimetableEntryAPI(c, config.GetDB())
	})
	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteTimetableEntryAPI(c, config.GetDB())
	})
}
