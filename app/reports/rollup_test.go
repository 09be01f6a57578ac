package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestComputePaymentRollup(t *testing.T) {
	paidAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "p1", Amount: 1000, Status: models.PaymentPaid, Type: models.PaymentTypeTuition, PaidAt: datePtr(paidAt)},
		{ID: "p2", Amount: 500, Status: models.PaymentPending, Type: models.PaymentTypeTuition, CreatedAt: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
	}

	r := ComputePaymentRollup(payments, RollupOptions{})

	assert.Equal(t, 2, r.Total)
	assert.Equal(t, int64(1000), r.TotalAmount)
	assert.Equal(t, 1, r.CountByStatus[models.PaymentPaid])
	assert.Equal(t, 1, r.CountByStatus[models.PaymentPending])
	assert.Equal(t, int64(1000), r.AveragePayment)
}

func TestComputePaymentRollupStatusCountsSumToTotal(t *testing.T) {
	payments := []models.Payment{
		{ID: "p1", Amount: 100, Status: models.PaymentPaid},
		{ID: "p2", Amount: 200, Status: models.PaymentFailed},
		{ID: "p3", Amount: 300, Status: models.PaymentPending},
		{ID: "p4", Amount: 400, Status: models.PaymentPaid},
		{ID: "p5", Status: models.PaymentPending},
	}

	r := ComputePaymentRollup(payments, RollupOptions{})

	sum := 0
	for _, n := range r.CountByStatus {
		sum += n
	}
	assert.Equal(t, r.Total, sum)
}

func TestComputePaymentRollupNoPaidPayments(t *testing.T) {
	payments := []models.Payment{
		{ID: "p1", Amount: 500, Status: models.PaymentPending},
		{ID: "p2", Amount: 700, Status: models.PaymentFailed},
	}

	r := ComputePaymentRollup(payments, RollupOptions{})

	assert.Equal(t, int64(0), r.TotalAmount)
	assert.Equal(t, int64(0), r.AveragePayment)
}

func TestComputePaymentRollupEmptyInput(t *testing.T) {
	r := ComputePaymentRollup(nil, RollupOptions{})

	assert.Equal(t, 0, r.Total)
	assert.Equal(t, int64(0), r.TotalAmount)
	assert.Equal(t, int64(0), r.AveragePayment)
	assert.Empty(t, r.CountByStatus)
}

func TestComputePaymentRollupCustomCountedSet(t *testing.T) {
	payments := []models.Payment{
		{ID: "p1", Amount: 100, Status: models.PaymentPaid},
		{ID: "p2", Amount: 200, Status: models.PaymentPending},
		{ID: "p3", Amount: 400, Status: models.PaymentFailed},
	}

	r := ComputePaymentRollup(payments, RollupOptions{
		Counted: map[models.PaymentStatus]bool{
			models.PaymentPaid:    true,
			models.PaymentPending: true,
		},
	})

	assert.Equal(t, int64(300), r.TotalAmount)
}

func TestComputePaymentRollupDateWindow(t *testing.T) {
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "p1", Amount: 100, Status: models.PaymentPaid, PaidAt: datePtr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))},
		{ID: "p2", Amount: 200, Status: models.PaymentPaid, PaidAt: datePtr(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC))},
		// no usable date, excluded from a bounded roll-up
		{ID: "p3", Amount: 400, Status: models.PaymentPaid},
	}

	r := ComputePaymentRollup(payments, RollupOptions{From: &march, To: &april})

	assert.Equal(t, 1, r.Total)
	assert.Equal(t, int64(100), r.TotalAmount)
}

func TestComputeInvoiceRollup(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	invoices := []models.Invoice{
		{ID: "i1", Amount: 1000, Status: models.InvoicePaid, DueDate: now.AddDate(0, -1, 0)},
		{ID: "i2", Amount: 500, Status: models.InvoiceSent, DueDate: now.AddDate(0, -1, 0)},
		{ID: "i3", Amount: 300, Status: models.InvoiceSent, DueDate: now.AddDate(0, 1, 0)},
		{ID: "i4", Amount: 900, Status: models.InvoiceCancelled, DueDate: now.AddDate(0, -2, 0)},
	}

	r := ComputeInvoiceRollup(invoices, now)

	assert.Equal(t, 4, r.Total)
	assert.Equal(t, int64(1800), r.TotalBilled)
	assert.Equal(t, int64(1000), r.TotalPaid)
	assert.Equal(t, 1, r.OverdueCount)
	assert.Equal(t, 2, r.CountByStatus[models.InvoiceSent])
}
