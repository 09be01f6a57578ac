package database

import (
	"database/sql"
	"fmt"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

// GetSchoolByID returns one school.
func GetSchoolByID(db *sql.DB, schoolID string) (*models.School, error) {
	query := `SELECT id, name, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(email, ''),
	                 is_active, created_at, updated_at
	          FROM schools
	          WHERE id = $1 AND deleted_at IS NULL`

	var s models.School
	err := db.QueryRow(query, schoolID).Scan(
		&s.ID, &s.Name, &s.Address, &s.Phone, &s.Email, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSchool registers a new tenant.
func CreateSchool(db *sql.DB, s *models.School) error {
	query := `INSERT INTO schools (name, address, phone, email, is_active)
	          VALUES ($1, $2, $3, $4, true)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, s.Name, s.Address, s.Phone, s.Email).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert school: %w", err)
	}
	s.IsActive = true
	return nil
}

// UpdateSchool updates the tenant profile.
func UpdateSchool(db *sql.DB, s *models.School) error {
	result, err := db.Exec(
		`UPDATE schools SET name = $1, address = $2, phone = $3, email = $4, updated_at = NOW()
		 WHERE id = $5 AND deleted_at IS NULL`,
		s.Name, s.Address, s.Phone, s.Email, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update school: %w", err)
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
