package models

import "time"

// Receipt is the proof-of-payment record issued for a paid payment.
// Receipt numbers are sequential per school; at most one receipt may
// reference a given payment.
type Receipt struct {
	ID            string    `json:"id" validate:"required,uuid"`
	SchoolID      string    `json:"school_id" validate:"required,uuid"`
	ReceiptNumber int64     `json:"receipt_number"`
	PaymentID     string    `json:"payment_id" validate:"required,uuid"`
	Amount        int64     `json:"amount" validate:"gte=0"`
	PaidAt        time.Time `json:"paid_at"`
	CreatedAt     time.Time `json:"created_at"`
}
