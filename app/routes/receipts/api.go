package receipts

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/database"
	"github.com/DigiPoint-niger/scolatek-sub000/app/reports"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

// GetReceiptsAPI lists the school's receipts, newest number first.
func GetReceiptsAPI(c *fiber.Ctx, db *sql.DB) error {
	receipts, err := database.GetReceipts(db, auth.SchoolID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch receipts"})
	}
	return c.JSON(fiber.Map{"success": true, "data": receipts})
}

// GetEligiblePaymentsAPI returns the ids of paid payments with no receipt yet.
func GetEligiblePaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	schoolID := auth.SchoolID(c)

	payments, err := database.GetPayments(db, schoolID, database.PaymentFilter{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch payments"})
	}
	receipts, err := database.GetReceipts(db, schoolID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch receipts"})
	}

	eligible := reports.EligibleForReceipt(payments, receipts)
	return c.JSON(fiber.Map{"success": true, "data": eligible})
}

// GenerateReceiptAPI issues the next sequential receipt for a paid payment.
func GenerateReceiptAPI(c *fiber.Ctx, db *sql.DB) error {
	receipt, err := database.CreateReceiptForPayment(db, auth.SchoolID(c), c.Params("paymentId"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Payment not found"})
	}
	if errors.Is(err, database.ErrPaymentNotPaid) {
		return c.Status(409).JSON(fiber.Map{"success": false, "error": "Payment is not paid"})
	}
	if errors.Is(err, database.ErrReceiptExists) {
		return c.Status(409).JSON(fiber.Map{"success": false, "error": "Payment already has a receipt"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate receipt"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "data": receipt})
}
