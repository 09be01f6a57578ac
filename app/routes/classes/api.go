package classes

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/database"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

var validate = validator.New()

type createClassRequest struct {
	Name  string `json:"name" validate:"required"`
	Level string `json:"level"`
}

// GetClassesAPI lists the school's active classes.
func GetClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classes, err := database.GetClasses(db, auth.SchoolID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch classes"})
	}
	return c.JSON(fiber.Map{"success": true, "data": classes})
}

// CreateClassAPI creates a class.
func CreateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	var req createClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	class := &models.Class{
		SchoolID: auth.SchoolID(c),
		Name:     req.Name,
		Level:    req.Level,
	}
	if err := database.CreateClass(db, class); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create class"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "data": class})
}
