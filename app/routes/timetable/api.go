package timetable

import (
	"database/sql"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/database"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

var validate = validator.New()

type createEntryRequest struct {
	ClassID   string `json:"class_id" validate:"required,uuid"`
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
	Subject   string `json:"subject" validate:"required"`
	DayOfWeek string `json:"day_of_week" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// GetTimetableAPI lists active timetable entries, optionally for one class.
func GetTimetableAPI(c *fiber.Ctx, db *sql.DB) error {
	entries, err := database.GetTimetableEntries(db, auth.SchoolID(c), c.Query("class_id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch timetable"})
	}
	return c.JSON(fiber.Map{"success": true, "data": entries})
}

// CreateTimetableEntryAPI creates a slot after validating input and
// rejecting teacher/class conflicts.
func CreateTimetableEntryAPI(c *fiber.Ctx, db *sql.DB) error {
	var req createEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if !ValidateTimeFormat(req.StartTime) || !ValidateTimeFormat(req.EndTime) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Times must be in HH:MM format"})
	}
	if req.StartTime >= req.EndTime {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Start time must be before end time"})
	}
	if !ValidateDayOfWeek(req.DayOfWeek) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid day of week"})
	}

	schoolID := auth.SchoolID(c)
	day := models.DayOfWeek(strings.ToLower(req.DayOfWeek))

	conflict, err := database.CheckTimeConflict(db, schoolID, req.TeacherID, req.ClassID, day, req.StartTime, req.EndTime, "")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to check conflicts"})
	}
	if conflict {
		return c.Status(409).JSON(fiber.Map{"success": false, "error": "Time conflict with an existing entry"})
	}

	entry := &models.TimetableEntry{
		SchoolID:  schoolID,
		ClassID:   req.ClassID,
		TeacherID: req.TeacherID,
		Subject:   req.Subject,
		DayOfWeek: day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := database.CreateTimetableEntry(db, entry); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create timetable entry"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "data": entry})
}

// DeleteTimetableEntryAPI removes a slot from the active timetable.
func DeleteTimetableEntryAPI(c *fiber.Ctx, db *sql.DB) error {
	err := database.DeactivateTimetableEntry(db, auth.SchoolID(c), c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Timetable entry not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete timetable entry"})
	}
	return c.JSON(fiber.Map{"success": true})
}
