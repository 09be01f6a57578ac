package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

func TestInvoiceIsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -10)
	future := now.AddDate(0, 0, 10)

	tests := []struct {
		name    string
		status  models.InvoiceStatus
		dueDate time.Time
		want    bool
	}{
		{"sent past due", models.InvoiceSent, past, true},
		{"draft past due", models.InvoiceDraft, past, true},
		{"sent not yet due", models.InvoiceSent, future, false},
		{"paid past due", models.InvoicePaid, past, false},
		{"cancelled past due", models.InvoiceCancelled, past, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &models.Invoice{Status: tt.status, DueDate: tt.dueDate}
			assert.Equal(t, tt.want, InvoiceIsOverdue(inv, now))
		})
	}
}

// Once past due and unpaid, an invoice stays overdue at every later instant
// until its status reaches a terminal state.
func TestInvoiceOverdueMonotonicInTime(t *testing.T) {
	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	inv := &models.Invoice{Status: models.InvoiceSent, DueDate: due}

	for days := 1; days <= 90; days += 7 {
		now := due.AddDate(0, 0, days)
		assert.True(t, InvoiceIsOverdue(inv, now), "day +%d", days)
	}

	inv.Status = models.InvoicePaid
	assert.False(t, InvoiceIsOverdue(inv, due.AddDate(0, 0, 120)))
}

func TestOverdueInvoices(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	invoices := []models.Invoice{
		{ID: "i1", Status: models.InvoiceSent, DueDate: now.AddDate(0, 0, -1)},
		{ID: "i2", Status: models.InvoiceSent, DueDate: now.AddDate(0, 0, 1)},
		{ID: "i3", Status: models.InvoicePaid, DueDate: now.AddDate(0, 0, -30)},
	}

	overdue := OverdueInvoices(invoices, now)

	assert.Len(t, overdue, 1)
	assert.Equal(t, "i1", overdue[0].ID)
}

func TestEligibleForReceipt(t *testing.T) {
	payments := []models.Payment{
		{ID: "p1", Status: models.PaymentPaid},
		{ID: "p2", Status: models.PaymentPaid},
		{ID: "p3", Status: models.PaymentPending},
	}
	receipts := []models.Receipt{
		{ID: "r1", PaymentID: "p1"},
	}

	eligible := EligibleForReceipt(payments, receipts)

	assert.Equal(t, []string{"p2"}, eligible)
}

// Generating a receipt for a payment removes it from the eligible set on the
// next computation.
func TestEligibleForReceiptIdempotent(t *testing.T) {
	payments := []models.Payment{
		{ID: "p1", Status: models.PaymentPaid},
		{ID: "p2", Status: models.PaymentPaid},
	}
	var receipts []models.Receipt

	first := EligibleForReceipt(payments, receipts)
	assert.ElementsMatch(t, []string{"p1", "p2"}, first)

	receipts = append(receipts, models.Receipt{ID: "r1", PaymentID: "p1"})

	second := EligibleForReceipt(payments, receipts)
	assert.Equal(t, []string{"p2"}, second)
}

func TestEligibleForReceiptEmptyInputs(t *testing.T) {
	assert.Empty(t, EligibleForReceipt(nil, nil))
	assert.Empty(t, EligibleForReceipt(nil, []models.Receipt{{ID: "r1", PaymentID: "p1"}}))
}
