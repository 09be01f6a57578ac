package models

import "testing"

func TestCanTransitionInvoice(t *testing.T) {
	tests := []struct {
		from InvoiceStatus
		to   InvoiceStatus
		want bool
	}{
		{InvoiceDraft, InvoiceSent, true},
		{InvoiceDraft, InvoiceCancelled, true},
		{InvoiceDraft, InvoicePaid, false},
		{InvoiceSent, InvoicePaid, true},
		{InvoiceSent, InvoiceCancelled, true},
		{InvoiceSent, InvoiceDraft, false},
		{InvoicePaid, InvoiceCancelled, false},
		{InvoiceCancelled, InvoiceSent, false},
	}

	for _, tt := range tests {
		if got := CanTransitionInvoice(tt.from, tt.to); got != tt.want {
			t.Fatalf("CanTransitionInvoice(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestCanTransitionPayment(t *testing.T) {
	tests := []struct {
		from PaymentStatus
		to   PaymentStatus
		want bool
	}{
		{PaymentPending, PaymentPaid, true},
		{PaymentPending, PaymentFailed, true},
		{PaymentFailed, PaymentPending, true},
		{PaymentFailed, PaymentPaid, false},
		{PaymentPaid, PaymentPending, false},
		{PaymentPaid, PaymentFailed, false},
	}

	for _, tt := range tests {
		if got := CanTransitionPayment(tt.from, tt.to); got != tt.want {
			t.Fatalf("CanTransitionPayment(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestCanTransitionSubscription(t *testing.T) {
	if !CanTransitionSubscription(SubscriptionPending, SubscriptionActive) {
		t.Fatal("expected pending -> active to be allowed")
	}
	if !CanTransitionSubscription(SubscriptionActive, SubscriptionExpired) {
		t.Fatal("expected active -> expired to be allowed")
	}
	if CanTransitionSubscription(SubscriptionExpired, SubscriptionActive) {
		t.Fatal("expected expired to be terminal")
	}
}

func TestInvalidTransitionError(t *testing.T) {
	err := &InvalidTransitionError{Entity: "invoice", From: "paid", To: "sent"}
	want := `invalid invoice transition from "paid" to "sent"`
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}
