package students

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/database"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

var validate = validator.New()

type studentRequest struct {
	StudentCode string     `json:"student_code"`
	FirstName   string     `json:"first_name" validate:"required"`
	LastName    string     `json:"last_name" validate:"required"`
	Gender      string     `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	ClassID     *string    `json:"class_id" validate:"omitempty,uuid"`
}

// GetStudentsAPI lists active students with search and pagination.
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	search := c.Query("search")
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	students, total, err := database.SearchStudents(db, auth.SchoolID(c), search, limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch students"})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// GetStudentByIDAPI returns one student.
func GetStudentByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, auth.SchoolID(c), c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch student"})
	}
	return c.JSON(fiber.Map{"success": true, "data": student})
}

// CreateStudentAPI enrolls a new student.
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	student := &models.Student{
		SchoolID:    auth.SchoolID(c),
		StudentCode: req.StudentCode,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      models.Gender(req.Gender),
		DateOfBirth: req.DateOfBirth,
		ClassID:     req.ClassID,
	}
	if err := database.CreateStudent(db, student); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create student"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "data": student})
}

// UpdateStudentAPI updates an enrolled student.
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	student := &models.Student{
		ID:          c.Params("id"),
		SchoolID:    auth.SchoolID(c),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      models.Gender(req.Gender),
		DateOfBirth: req.DateOfBirth,
		ClassID:     req.ClassID,
		IsActive:    true,
	}
	err := database.UpdateStudent(db, student)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update student"})
	}
	return c.JSON(fiber.Map{"success": true, "data": student})
}

// DeactivateStudentAPI soft-deletes a student.
func DeactivateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	err := database.DeactivateStudent(db, auth.SchoolID(c), c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to deactivate student"})
	}
	return c.JSON(fiber.Map{"success": true})
}
