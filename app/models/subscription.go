package models

import "time"

// Subscription is a school's platform subscription.
type Subscription struct {
	ID        string             `json:"id" validate:"required,uuid"`
	SchoolID  string             `json:"school_id" validate:"required,uuid"`
	Plan      string             `json:"plan" validate:"required"`
	Price     int64              `json:"price" validate:"gte=0"`
	Status    SubscriptionStatus `json:"status" validate:"required"`
	StartedAt *time.Time         `json:"started_at,omitempty"`
	ExpiresAt *time.Time         `json:"expires_at,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}
