package schools

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/database"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

var validate = validator.New()

type schoolRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// GetMySchoolAPI returns the current tenant's profile.
func GetMySchoolAPI(c *fiber.Ctx, db *sql.DB) error {
	school, err := database.GetSchoolByID(db, auth.SchoolID(c))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "School not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch school"})
	}
	return c.JSON(fiber.Map{"success": true, "data": school})
}

// UpdateMySchoolAPI updates the current tenant's profile.
func UpdateMySchoolAPI(c *fiber.Ctx, db *sql.DB) error {
	var req schoolRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	school := &models.School{
		ID:      auth.SchoolID(c),
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
	err := database.UpdateSchool(db, school)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "School not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update school"})
	}
	return c.JSON(fiber.Map{"success": true, "data": school})
}

// CreateSchoolAPI registers a new tenant (platform admin only).
func CreateSchoolAPI(c *fiber.Ctx, db *sql.DB) error {
	var req schoolRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	school := &models.School{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
	if err := database.CreateSchool(db, school); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create school"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "data": school})
}
