package dashboard

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/database"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
	"github.com/DigiPoint-niger/scolatek-sub000/app/reports"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

// DashboardStats is everything the director/accounting dashboards display
// for one school. All monetary values are minor currency units; rates are
// percentages rounded to two decimals.
type DashboardStats struct {
	TotalStudents    int                     `json:"total_students"`
	TotalClasses     int                     `json:"total_classes"`
	PaymentRollup    reports.Rollup          `json:"payment_rollup"`
	InvoiceRollup    reports.InvoiceRollup   `json:"invoice_rollup"`
	MonthlyRevenue   []reports.MonthBucket   `json:"monthly_revenue"`
	RevenueByType    []reports.CategoryTotal `json:"revenue_by_type"`
	GrowthRate       float64                 `json:"growth_rate"`
	CollectionRate   float64                 `json:"collection_rate"`
	EligibleReceipts []string                `json:"eligible_receipts"`
	OverdueInvoices  int                     `json:"overdue_invoices"`
}

// GetDashboardStatsAPI fetches the school's transactional rows once, then
// runs every aggregation over the in-memory set.
func GetDashboardStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	schoolID := auth.SchoolID(c)
	now := time.Now()

	payments, err := database.GetPayments(db, schoolID, database.PaymentFilter{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch payments"})
	}
	invoices, err := database.GetInvoices(db, schoolID, database.InvoiceFilter{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch invoices"})
	}
	receipts, err := database.GetReceipts(db, schoolID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch receipts"})
	}
	totalStudents, err := database.CountActiveStudents(db, schoolID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to count students"})
	}
	totalClasses, err := database.CountActiveClasses(db, schoolID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to count classes"})
	}

	invoiceRollup := reports.ComputeInvoiceRollup(invoices, now)
	stats := DashboardStats{
		TotalStudents:  totalStudents,
		TotalClasses:   totalClasses,
		PaymentRollup:  reports.ComputePaymentRollup(payments, reports.RollupOptions{}),
		InvoiceRollup:  invoiceRollup,
		MonthlyRevenue: reports.MonthlyRevenue(payments, now),
		RevenueByType: reports.BreakdownByType(payments, nil, []models.PaymentType{
			models.PaymentTypeTuition,
			models.PaymentTypeSubscription,
			models.PaymentTypeOther,
		}),
		GrowthRate: reports.GrowthRate(
			reports.MonthRevenue(payments, now),
			reports.MonthRevenue(payments, reports.PreviousMonth(now)),
		).InexactFloat64(),
		CollectionRate: reports.CollectionRate(
			invoiceRollup.TotalPaid,
			invoiceRollup.TotalBilled,
		).InexactFloat64(),
		EligibleReceipts: reports.EligibleForReceipt(payments, receipts),
		OverdueInvoices:  invoiceRollup.OverdueCount,
	}

	return c.JSON(fiber.Map{"success": true, "data": stats})
}
