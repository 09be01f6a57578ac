package database

import (
	"database/sql"
	"fmt"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

// GetTimetableEntries returns active timetable entries for one school,
// optionally limited to one class.
func GetTimetableEntries(db *sql.DB, schoolID, classID string) ([]models.TimetableEntry, error) {
	query := `SELECT t.id, t.school_id, t.class_id, t.teacher_id, t.subject,
	                 t.day_of_week, t.start_time, t.end_time, t.is_active, t.created_at
	          FROM timetable_entries t
	          WHERE t.school_id = $1 AND t.is_active = true`

	args := []interface{}{schoolID}
	if classID != "" {
		query += " AND t.class_id = $2"
		args = append(args, classID)
	}
	query += " ORDER BY t.day_of_week, t.start_time"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timetable entries: %w", err)
	}
	defer rows.Close()

	var entries []models.TimetableEntry
	for rows.Next() {
		var e models.TimetableEntry
		var day string
		err := rows.Scan(&e.ID, &e.SchoolID, &e.ClassID, &e.TeacherID, &e.Subject,
			&day, &e.StartTime, &e.EndTime, &e.IsActive, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timetable entry: %w", err)
		}
		e.DayOfWeek = models.DayOfWeek(day)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CheckTimeConflict reports whether a proposed slot overlaps an existing
// active entry for the same teacher or the same class on that day.
func CheckTimeConflict(db *sql.DB, schoolID, teacherID, classID string, dayOfWeek models.DayOfWeek, startTime, endTime, excludeID string) (bool, error) {
	query := `SELECT COUNT(*) FROM timetable_entries
	          WHERE school_id = $1
	          AND (teacher_id = $2 OR class_id = $3)
	          AND day_of_week = $4
	          AND is_active = true
	          AND (
	              (start_time <= $5 AND end_time > $5) OR
	              (start_time < $6 AND end_time >= $6) OR
	              (start_time >= $5 AND end_time <= $6)
	          )`

	args := []interface{}{schoolID, teacherID, classID, string(dayOfWeek), startTime, endTime}
	if excludeID != "" {
		query += " AND id != $7"
		args = append(args, excludeID)
	}

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check time conflict: %w", err)
	}
	return count > 0, nil
}

// CreateTimetableEntry inserts a timetable slot.
func CreateTimetableEntry(db *sql.DB, e *models.TimetableEntry) error {
	query := `INSERT INTO timetable_entries (school_id, class_id, teacher_id, subject, day_of_week, start_time, end_time, is_active)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, true)
	          RETURNING id, created_at`
	err := db.QueryRow(query,
		e.SchoolID, e.ClassID, e.TeacherID, e.Subject, string(e.DayOfWeek), e.StartTime, e.EndTime,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert timetable entry: %w", err)
	}
	e.IsActive = true
	return nil
}

// DeactivateTimetableEntry removes a slot from the active timetable.
func DeactivateTimetableEntry(db *sql.DB, schoolID, entryID string) error {
	result, err := db.Exec(
		`UPDATE timetable_entries SET is_active = false WHERE id = $1 AND school_id = $2`,
		entryID, schoolID)
	if err != nil {
		return fmt.Errorf("failed to deactivate timetable entry: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
