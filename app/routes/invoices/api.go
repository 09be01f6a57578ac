package invoices

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

type createInvoiceRequest struct {
	StudentID string    `json:"student_id" validate:"required,uuid"`
	Amount    int64     `json:"amount" validate:"gte=0"`
	DueDate   time.Time `json:"due_date" validate:"required"`
}

// invoiceResponse decorates an invoice with its computed overdue flag. The
// flag is evaluated at read time and never stored.
type invoiceResponse struct {
	models.Invoice
	Overdue bool `json:"overdue"`
}

func toResponse(invoices []models.Invoice, now time.Time) []invoiceResponse {
	out := make([]invoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = invoiceResponse{
			Invoice: invoices[i],
			Overdue: reports.InvoiceIsOverdue(&invoices[i], now),
		}
	}
	return out
}

// GetInvoicesAPI lists the school's invoices with optional status/student filters.
func GetInvoicesAPI(c *fiber.Ctx, db *sql.DB) error {
	filter := database.InvoiceFilter{
		StudentID: c.Query("student_id"),
		Status:    models.InvoiceStatus(c.Query("status")),
	}

	invoices, err := database.GetInvoices(db, auth.SchoolID(c), filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch invoices"})
	}
	return c.JSON(fiber.Map{"success": true, "data": toResponse(invoices, time.Now())})
}

// GetOverdueInvoicesAPI lists the invoices overdue right now.
func GetOverdueInvoicesAPI(c *fiber.Ctx, db *sql.DB) error {
	invoices, err := database.GetInvoices(db, auth.SchoolID(c), database.InvoiceFilter{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch invoices"})
	}
	overdue := reports.OverdueInvoices(invoices, time.Now())
	return c.JSON(fiber.Map{"success": true, "data": toResponse(overdue, time.Now())})
}

// GetInvoiceByIDAPI returns one invoice.
func GetInvoiceByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	invoice, err := database.GetInvoiceByID(db, auth.SchoolID(c), c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Invoice not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch invoice"})
	}
	resp := invoiceResponse{Invoice: *invoice, Overdue: reports.InvoiceIsOverdue(invoice, time.Now())}
	return c.JSON(fiber.Map{"success": true, "data": resp})
}

// CreateInvoiceAPI creates a draft invoice.
func CreateInvoiceAPI(c *fiber.Ctx, db *sql.DB) error {
	var req createInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	invoice := &models.Invoice{
		SchoolID:  auth.SchoolID(c),
		StudentID: req.StudentID,
		Amount:    req.Amount,
		Status:    models.InvoiceDraft,
		DueDate:   req.DueDate,
	}
	if err := database.CreateInvoice(db, invoice); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create invoice"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "data": invoice})
}

func transitionInvoice(c *fiber.Ctx, db *sql.DB, to models.InvoiceStatus) error {
	invoice, err := database.TransitionInvoice(db, auth.SchoolID(c), c.Params("id"), to)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Invoice not found"})
	}
	var invalid *models.InvalidTransitionError
	if errors.As(err, &invalid) {
		return c.Status(409).JSON(fiber.Map{"success": false, "error": invalid.Error()})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update invoice"})
	}
	resp := invoiceResponse{Invoice: *invoice, Overdue: reports.InvoiceIsOverdue(invoice, time.Now())}
	return c.JSON(fiber.Map{"success": true, "data": resp})
}

// SendInvoiceAPI moves a draft invoice to sent, stamping sent_at.
func SendInvoiceAPI(c *fiber.Ctx, db *sql.DB) error {
	return transitionInvoice(c, db, models.InvoiceSent)
}

// MarkInvoicePaidAPI moves a sent invoice to paid, stamping paid_at.
func MarkInvoicePaidAPI(c *fiber.Ctx, db *sql.DB) error {
	return transitionInvoice(c, db, models.InvoicePaid)
}

// CancelInvoiceAPI cancels a non-terminal invoice.
func CancelInvoiceAPI(c *fiber.Ctx, db *sql.DB) error {
	return transitionInvoice(c, db, models.InvoiceCancelled)
}
