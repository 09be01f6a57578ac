package payments

import (
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/database"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
	"github.com/DigiPoint-niger/scolatek-sub000/app/reports"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

var validate = validator.New()

type createPaymentRequest struct {
	StudentID      string  `json:"student_id" validate:"required,uuid"`
	Amount         int64   `json:"amount" validate:"gte=0"`
	Type           string  `json:"type" validate:"required,oneof=tuition subscription other"`
	Method         string  `json:"method"`
	TransactionRef *string `json:"transaction_ref"`
}

// GetPaymentsAPI lists the school's payments with optional status/type/student filters.
func GetPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	filter := database.PaymentFilter{
		StudentID: c.Query("student_id"),
		Status:    models.PaymentStatus(c.Query("status")),
		Type:      models.PaymentType(c.Query("type")),
	}

	payments, err := database.GetPayments(db, auth.SchoolID(c), filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch payments"})
	}
	return c.JSON(fiber.Map{"success": true, "data": payments})
}

// GetPaymentByIDAPI returns one payment.
func GetPaymentByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	payment, err := database.GetPaymentByID(db, auth.SchoolID(c), c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Payment not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch payment"})
	}
	return c.JSON(fiber.Map{"success": true, "data": payment})
}

// CreatePaymentAPI records a new pending payment.
func CreatePaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req createPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	payment := &models.Payment{
		SchoolID:       auth.SchoolID(c),
		StudentID:      req.StudentID,
		Amount:         req.Amount,
		Status:         models.PaymentPending,
		Type:           models.PaymentType(req.Type),
		Method:         req.Method,
		TransactionRef: req.TransactionRef,
	}
	if err := database.CreatePayment(db, payment); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create payment"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "data": payment})
}

func transitionPayment(c *fiber.Ctx, db *sql.DB, to models.PaymentStatus) error {
	payment, err := database.TransitionPayment(db, auth.SchoolID(c), c.Params("id"), to)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Payment not found"})
	}
	var invalid *models.InvalidTransitionError
	if errors.As(err, &invalid) {
		return c.Status(409).JSON(fiber.Map{"success": false, "error": invalid.Error()})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update payment"})
	}
	return c.JSON(fiber.Map{"success": true, "data": payment})
}

// MarkPaymentPaidAPI moves a payment to paid, stamping paid_at.
func MarkPaymentPaidAPI(c *fiber.Ctx, db *sql.DB) error {
	return transitionPayment(c, db, models.PaymentPaid)
}

// MarkPaymentFailedAPI moves a payment to failed.
func MarkPaymentFailedAPI(c *fiber.Ctx, db *sql.DB) error {
	return transitionPayment(c, db, models.PaymentFailed)
}

// RetryPaymentAPI moves a failed payment back to pending.
func RetryPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	return transitionPayment(c, db, models.PaymentPending)
}

// GetPaymentStatsAPI returns the roll-up, the type breakdown and the
// month-over-month growth for the school's payments.
func GetPaymentStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	schoolID := auth.SchoolID(c)

	payments, err := database.GetPayments(db, schoolID, database.PaymentFilter{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch payments"})
	}

	now := time.Now()
	rollup := reports.ComputePaymentRollup(payments, reports.RollupOptions{})
	breakdown := reports.BreakdownByType(payments, nil, []models.PaymentType{
		models.PaymentTypeTuition,
		models.PaymentTypeSubscription,
		models.PaymentTypeOther,
	})
	current := reports.MonthRevenue(payments, now)
	previous := reports.MonthRevenue(payments, reports.PreviousMonth(now))
	growth := reports.GrowthRate(current, previous)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"rollup":         rollup,
			"breakdown":      breakdown,
			"current_month":  current,
			"previous_month": previous,
			"growth_rate":    growth.InexactFloat64(),
		},
	})
}
