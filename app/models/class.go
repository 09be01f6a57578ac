package models

import "time"

// Class is a teaching group students are assigned to.
type Class struct {
	ID        string    `json:"id" validate:"required,uuid"`
	SchoolID  string    `json:"school_id" validate:"required,uuid"`
	Name      string    `json:"name" validate:"required"`
	Level     string    `json:"level,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
