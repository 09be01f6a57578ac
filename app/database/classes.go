package database

import (
	"database/sql"
	"fmt"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

// GetClasses returns active classes for one school.
func GetClasses(db *sql.DB, schoolID string) ([]models.Class, error) {
	query := `SELECT c.id, c.school_id, c.name, COALESCE(c.level, ''), c.is_active, c.created_at, c.updated_at
	          FROM classes c
	          WHERE c.school_id = $1 AND c.is_active = true
	          ORDER BY c.name`

	rows, err := db.Query(query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch classes: %w", err)
	}
	defer rows.Close()

	var classes []models.Class
	for rows.Next() {
		var c models.Class
		err := rows.Scan(&c.ID, &c.SchoolID, &c.Name, &c.Level, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// CreateClass inserts a class.
func CreateClass(db *sql.DB, c *models.Class) error {
	query := `INSERT INTO classes (school_id, name, level, is_active)
	          VALUES ($1, $2, $3, true)
	          RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, c.SchoolID, c.Name, c.Level).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert class: %w", err)
	}
	c.IsActive = true
	return nil
}

// CountActiveClasses returns the number of active classes for one school.
func CountActiveClasses(db *sql.DB, schoolID string) (int, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM classes WHERE school_id = $1 AND is_active = true`,
		schoolID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count classes: %w", err)
	}
	return count, nil
}
