package models

import "time"

// Invoice represents an amount billed to a student's account.
type Invoice struct {
	ID        string        `json:"id" validate:"required,uuid"`
	SchoolID  string        `json:"school_id" validate:"required,uuid"`
	StudentID string        `json:"student_id" validate:"required,uuid"`
	Amount    int64         `json:"amount" validate:"gte=0"`
	Status    InvoiceStatus `json:"status" validate:"required"`
	DueDate   time.Time     `json:"due_date"`
	CreatedAt time.Time     `json:"created_at"`
	SentAt    *time.Time    `json:"sent_at,omitempty"`
	PaidAt    *time.Time    `json:"paid_at,omitempty"`

	Student *Student `json:"student,omitempty"`
}

// Terminal reports whether the invoice has reached a final state.
func (i *Invoice) Terminal() bool {
	return i.Status == InvoicePaid || i.Status == InvoiceCancelled
}
