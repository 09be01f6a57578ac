package reports

import (
	"time"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

// InvoiceIsOverdue reports whether an invoice is past due: due date strictly
// before now and status not yet terminal (paid or cancelled). The flag is
// never persisted; callers pass the evaluation instant so two views rendered
// at different times may legitimately disagree near the boundary.
func InvoiceIsOverdue(inv *models.Invoice, now time.Time) bool {
	if inv.Terminal() {
		return false
	}
	return inv.DueDate.Before(now)
}

// OverdueInvoices filters the invoices overdue at the given instant.
func OverdueInvoices(invoices []models.Invoice, now time.Time) []models.Invoice {
	var out []models.Invoice
	for i := range invoices {
		if InvoiceIsOverdue(&invoices[i], now) {
			out = append(out, invoices[i])
		}
	}
	return out
}

// EligibleForReceipt returns the ids of paid payments that no receipt
// references yet. Receipted ids go into a set first so the pass stays
// O(n+m) regardless of tenant size.
func EligibleForReceipt(payments []models.Payment, receipts []models.Receipt) []string {
	receipted := make(map[string]bool, len(receipts))
	for i := range receipts {
		receipted[receipts[i].PaymentID] = true
	}

	var eligible []string
	for i := range payments {
		p := &payments[i]
		if p.Status == models.PaymentPaid && !receipted[p.ID] {
			eligible = append(eligible, p.ID)
		}
	}
	return eligible
}
