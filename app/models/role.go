package models

import "time"

// Role names used across the application.
const (
	RoleAdmin      = "admin"
	RoleDirector   = "director"
	RoleAccountant = "accountant"
	RoleTeacher    = "teacher"
)

type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
