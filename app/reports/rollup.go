// Package reports turns tenant-scoped transactional rows (payments, invoices,
// receipts) into the aggregates shown on the accounting and director
// dashboards. Everything in this package is a pure function over rows the
// caller already fetched: no I/O, no mutation of inputs, no hidden state.
//
// Amounts are int64 minor currency units throughout. Summation never touches
// floating point; the only non-integral results (growth rate, collection
// rate) are computed with shopspring/decimal.
package reports

import (
	"time"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

// RollupOptions controls which rows a roll-up sums.
type RollupOptions struct {
	// Counted is the set of statuses whose amounts contribute to TotalAmount.
	// Defaults to {paid} when empty.
	Counted map[models.PaymentStatus]bool

	// From/To bound the roll-up by effective date when set (inclusive lower,
	// exclusive upper). Rows with no usable date are excluded from a bounded
	// roll-up.
	From *time.Time
	To   *time.Time
}

// Rollup is the scalar aggregate over a payment list.
type Rollup struct {
	Total          int                          `json:"total"`
	TotalAmount    int64                        `json:"total_amount"`
	CountByStatus  map[models.PaymentStatus]int `json:"count_by_status"`
	AveragePayment int64                        `json:"average_payment"`
}

// ComputePaymentRollup computes count, counted-amount sum, per-status counts
// and the average paid amount over a tenant-scoped payment list. The average
// is 0 when there are no paid payments.
func ComputePaymentRollup(payments []models.Payment, opts RollupOptions) Rollup {
	counted := opts.Counted
	if len(counted) == 0 {
		counted = map[models.PaymentStatus]bool{models.PaymentPaid: true}
	}

	r := Rollup{CountByStatus: make(map[models.PaymentStatus]int)}
	for i := range payments {
		p := &payments[i]
		if !inWindow(p, opts.From, opts.To) {
			continue
		}
		r.Total++
		r.CountByStatus[p.Status]++
		if counted[p.Status] {
			r.TotalAmount += p.Amount
		}
	}
	if paid := r.CountByStatus[models.PaymentPaid]; paid > 0 {
		r.AveragePayment = r.TotalAmount / int64(paid)
	}
	return r
}

// InvoiceRollup is the scalar aggregate over an invoice list. Cancelled
// invoices are counted but never contribute to amounts.
type InvoiceRollup struct {
	Total         int                          `json:"total"`
	TotalBilled   int64                        `json:"total_billed"`
	TotalPaid     int64                        `json:"total_paid"`
	CountByStatus map[models.InvoiceStatus]int `json:"count_by_status"`
	OverdueCount  int                          `json:"overdue_count"`
}

// ComputeInvoiceRollup computes billed/paid sums and per-status counts over a
// tenant-scoped invoice list. Overdue is evaluated against the supplied
// instant, not wall clock, so results are reproducible.
func ComputeInvoiceRollup(invoices []models.Invoice, now time.Time) InvoiceRollup {
	r := InvoiceRollup{CountByStatus: make(map[models.InvoiceStatus]int)}
	for i := range invoices {
		inv := &invoices[i]
		r.Total++
		r.CountByStatus[inv.Status]++
		if inv.Status != models.InvoiceCancelled {
			r.TotalBilled += inv.Amount
		}
		if inv.Status == models.InvoicePaid {
			r.TotalPaid += inv.Amount
		}
		if InvoiceIsOverdue(inv, now) {
			r.OverdueCount++
		}
	}
	return r
}

func inWindow(p *models.Payment, from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	d, ok := p.EffectiveDate()
	if !ok {
		return false
	}
	if from != nil && d.Before(*from) {
		return false
	}
	if to != nil && !d.Before(*to) {
		return false
	}
	return true
}
