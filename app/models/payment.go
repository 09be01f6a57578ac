package models

import "time"

// Payment represents a payment made for a student. Amounts are stored in
// minor currency units (centimes) to keep all arithmetic integral.
type Payment struct {
	ID             string        `json:"id" validate:"required,uuid"`
	SchoolID       string        `json:"school_id" validate:"required,uuid"`
	StudentID      string        `json:"student_id" validate:"required,uuid"`
	Amount         int64         `json:"amount" validate:"gte=0"`
	Status         PaymentStatus `json:"status" validate:"required"`
	Type           PaymentType   `json:"type" validate:"required"`
	Method         string        `json:"method,omitempty"`
	TransactionRef *string       `json:"transaction_ref,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	PaidAt         *time.Time    `json:"paid_at,omitempty"`

	Student *Student `json:"student,omitempty"`
}

// EffectiveDate returns the date a payment counts against for monthly
// bucketing: paid_at when set, created_at otherwise. The second return is
// false when neither is usable.
func (p *Payment) EffectiveDate() (time.Time, bool) {
	if p.PaidAt != nil && !p.PaidAt.IsZero() {
		return *p.PaidAt, true
	}
	if !p.CreatedAt.IsZero() {
		return p.CreatedAt, true
	}
	return time.Time{}, false
}
