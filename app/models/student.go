package models

import "time"

// Student represents an enrolled student.
type Student struct {
	ID          string     `json:"id" validate:"required,uuid"`
	SchoolID    string     `json:"school_id" validate:"required,uuid"`
	StudentCode string     `json:"student_code"`
	FirstName   string     `json:"first_name" validate:"required"`
	LastName    string     `json:"last_name" validate:"required"`
	Gender      Gender     `json:"gender,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	ClassID     *string    `json:"class_id,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`

	Class *Class `json:"class,omitempty"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
