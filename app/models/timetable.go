package models

import "time"

// TimetableEntry is one scheduled lesson slot for a class.
// Times are stored as HH:MM strings, compared lexically.
type TimetableEntry struct {
	ID        string    `json:"id" validate:"required,uuid"`
	SchoolID  string    `json:"school_id" validate:"required,uuid"`
	ClassID   string    `json:"class_id" validate:"required,uuid"`
	TeacherID string    `json:"teacher_id" validate:"required,uuid"`
	Subject   string    `json:"subject" validate:"required"`
	DayOfWeek DayOfWeek `json:"day_of_week" validate:"required"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time" validate:"required"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
