package database

import (
	"database/sql"
	"fmt"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

// SearchStudents returns active students for one school with optional search
// over name and student code, paginated. The second return value is the
// total match count before pagination.
func SearchStudents(db *sql.DB, schoolID, searchTerm string, limit, offset int) ([]models.Student, int, error) {
	baseWhere := `WHERE s.school_id = $1 AND s.is_active = true AND s.deleted_at IS NULL`
	args := []interface{}{schoolID}
	argIndex := 2

	if searchTerm != "" {
		baseWhere += fmt.Sprintf(` AND (s.first_name ILIKE $%d OR s.last_name ILIKE $%d OR s.student_code ILIKE $%d)`,
			argIndex, argIndex, argIndex)
		args = append(args, "%"+searchTerm+"%")
		argIndex++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM students s ` + baseWhere
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	query := `SELECT s.id, s.school_id, s.student_code, s.first_name, s.last_name,
	                 COALESCE(s.gender, ''), s.date_of_birth, s.class_id, s.is_active,
	                 s.created_at, s.updated_at
	          FROM students s ` + baseWhere +
		fmt.Sprintf(` ORDER BY s.last_name, s.first_name LIMIT $%d OFFSET $%d`, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		var gender string
		err := rows.Scan(&s.ID, &s.SchoolID, &s.StudentCode, &s.FirstName, &s.LastName,
			&gender, &s.DateOfBirth, &s.ClassID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan student: %w", err)
		}
		s.Gender = models.Gender(gender)
		students = append(students, s)
	}
	return students, total, rows.Err()
}

// GetStudentByID returns one student, scoped to the school.
func GetStudentByID(db *sql.DB, schoolID, studentID string) (*models.Student, error) {
	query := `SELECT s.id, s.school_id, s.student_code, s.first_name, s.last_name,
	                 COALESCE(s.gender, ''), s.date_of_birth, s.class_id, s.is_active,
	                 s.created_at, s.updated_at
	          FROM students s
	          WHERE s.id = $1 AND s.school_id = $2 AND s.deleted_at IS NULL`

	var s models.Student
	var gender string
	err := db.QueryRow(query, studentID, schoolID).Scan(
		&s.ID, &s.SchoolID, &s.StudentCode, &s.FirstName, &s.LastName,
		&gender, &s.DateOfBirth, &s.ClassID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Gender = models.Gender(gender)
	return &s, nil
}

// CreateStudent enrolls a new student.
func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (school_id, student_code, first_name, last_name, gender, date_of_birth, class_id, is_active)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, true)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		s.SchoolID, s.StudentCode, s.FirstName, s.LastName, string(s.Gender), s.DateOfBirth, s.ClassID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}
	s.IsActive = true
	return nil
}

// UpdateStudent updates mutable student fields.
func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students
	          SET first_name = $1, last_name = $2, gender = $3, date_of_birth = $4,
	              class_id = $5, is_active = $6, updated_at = NOW()
	          WHERE id = $7 AND school_id = $8 AND deleted_at IS NULL`
	result, err := db.Exec(query,
		s.FirstName, s.LastName, string(s.Gender), s.DateOfBirth, s.ClassID, s.IsActive, s.ID, s.SchoolID)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
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

// DeactivateStudent soft-deletes a student.
func DeactivateStudent(db *sql.DB, schoolID, studentID string) error {
	result, err := db.Exec(
		`UPDATE students SET is_active = false, deleted_at = NOW()
		 WHERE id = $1 AND school_id = $2 AND deleted_at IS NULL`,
		studentID, schoolID)
	if err != nil {
		return fmt.Errorf("failed to deactivate student: %w", err)
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

// CountActiveStudents returns the number of active students for one school.
func CountActiveStudents(db *sql.DB, schoolID string) (int, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM students WHERE school_id = $1 AND is_active = true AND deleted_at IS NULL`,
		schoolID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}
