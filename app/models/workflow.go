package models

import "fmt"

// Status transitions are enforced here rather than trusting callers.
// Anything not listed in a table is rejected.

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid, PaymentFailed},
	PaymentFailed:  {PaymentPending},
	PaymentPaid:    {},
}

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceDraft:     {InvoiceSent, InvoiceCancelled},
	InvoiceSent:      {InvoicePaid, InvoiceCancelled},
	InvoicePaid:      {},
	InvoiceCancelled: {},
}

var subscriptionTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	SubscriptionPending: {SubscriptionActive, SubscriptionExpired},
	SubscriptionActive:  {SubscriptionExpired},
	SubscriptionExpired: {},
}

// CanTransitionPayment reports whether a payment may move from one status to another.
func CanTransitionPayment(from, to PaymentStatus) bool {
	for _, next := range paymentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionInvoice reports whether an invoice may move from one status to another.
func CanTransitionInvoice(from, to InvoiceStatus) bool {
	for _, next := range invoiceTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionSubscription reports whether a subscription may move from one status to another.
func CanTransitionSubscription(from, to SubscriptionStatus) bool {
	for _, next := range subscriptionTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InvalidTransitionError is returned when a requested status change is not
// allowed by the entity's transition table.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition from %q to %q", e.Entity, e.From, e.To)
}
